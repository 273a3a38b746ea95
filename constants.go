package main

type Mode int

const (
	ModeNormal Mode = iota
	ModeMove
	ModeColorInput
	ModeFileInput
	ModePicker
	ModeConfirm
)

type FileOperation int

const (
	FileOpSave FileOperation = iota
	FileOpOpen
	FileOpExport
)

type ConfirmAction int

const (
	ConfirmQuit ConfirmAction = iota
	ConfirmOverwriteFile
	ConfirmNewDesign
)

const (
	paletteRows = 1 // swatch bar above the canvas
	statusRows  = 1

	paletteLabel = " Quilt "
	swatchWidth  = 3
	swatchStride = swatchWidth + 1
)

var defaultPalette = []string{
	"#c0392b", "#e67e22", "#f1c40f", "#27ae60",
	"#16a085", "#2980b9", "#8e44ad", "#2c3e50",
	"#ecf0f1", "#95a5a6", "#d35400", "#f39c12",
	"#1abc9c", "#3498db", "#e84393", "#6d4c41",
}
