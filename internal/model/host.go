package model

// The synthesized host program and the runtime that drives it agree on these
// names.
const (
	// HostModuleName is the module name of the synthesized program.
	HostModuleName = "DecodeRunner"
	// InboundPort carries the JSON value into the program.
	InboundPort = "moduleInput"
	// OutboundPort carries the {tag, value} result out of the program.
	OutboundPort = "sendToJs"
)
