// Package hardware is the base package for the Microvision emulation. It and
// its sub-packages contain everything required for a headless emulation: the
// TMS1100 CPU, the Hughes 0488 LCD controller, the buzzer pitch detector,
// the rotary controller, the segmented ROM/RAM stores, and the console
// harness that wires their pins together every tick.
//
// Nothing under this package imports a rendering, audio or input-polling
// library. Those concerns are reached only through the capability
// interfaces in the ports package, and are supplied by a caller (see
// internal/frontend for a reference terminal implementation).
package hardware

