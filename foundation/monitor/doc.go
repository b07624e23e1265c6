// File: doc.go
// Title: Monitor Engine Package Documentation
// Description: Entry point of the device monitor. The engine turns a command
//              line into a call on a live object and renders the result.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

/*
Package monitor executes device monitor commands against registered objects.

Package: monitor
Title: Device Monitor Engine
Description: A command names a device and then a member of it, followed by
             arguments: "sysbus.uart0 Configure 115200". The engine looks the
             device up in its object registry, resolves the member through the
             member cache, binds and coerces the arguments through the binder
             and invokes the member. Results whose type offers further members
             can be chained: "sysbus.uart0 Settings Parity".
Author: msto63
Version: v0.1.0
Created: 2026-10-14
Modified: 2026-10-14

Change History:
- 2026-10-14 v0.1.0: Initial implementation

Command forms:

	device                          print the usage listing of device
	device Method arg1 arg2 name=v  call a method
	device Property [= value]       read or write a field or property
	device Indexer [i j] [value]    read or write an indexer
	device [i]                      use the indexer when all share one name
	device Select Member ...        run Member on every element
	device ForEach Member ...       same, discarding the results
	$var = value                    define a variable, used as $var

Package layout:
  - token: tokens, the line tokenizer and argument grouping
  - member: type inspection and the member cache
  - coerce: token to Go value conversion
  - binder: overload resolution and argument binding
  - dispatch: the command state machine
  - render: result and usage formatting
  - objects: the named object registry
  - fault: the recoverable command errors

Example:

	engine := monitor.NewEngine(monitor.Options{Ambient: machine})
	_ = engine.Registry().Register("sysbus.uart0", uart)
	result, err := engine.Execute(ctx, "sysbus.uart0 BaudRate 9600")
*/
package monitor
