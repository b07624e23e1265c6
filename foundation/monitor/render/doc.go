// Package render formats command results and member listings for display.
//
// Package: render
// Title: Result Renderer
// Description: Renders integers in the configured number mode, string tables
//              as bordered grids, maps as aligned key : value lines, other
//              sequences as bracketed lists, images as inline terminal images
//              and enums with their legal names. Usage renders the member
//              listing of a type.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
package render
