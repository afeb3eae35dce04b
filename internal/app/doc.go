package app

// Package app wires settings, the draw service and the Fyne window together.
// Both the GUI binary and the CLI's gui command start the application here.
