package tab

// ModeKind discriminates browsing from picking.
type ModeKind int

const (
	// ModeBrowse is the normal file manager surface.
	ModeBrowse ModeKind = iota
	// ModePicker is an embedded open/save chooser.
	ModePicker
)

// PickerKind narrows what a picker tab is choosing.
type PickerKind int

const (
	PickerOpenFile PickerKind = iota
	PickerOpenFiles
	PickerOpenFolder
	PickerSaveFile
)

// Multiple reports whether the picker accepts more than one entry.
func (k PickerKind) Multiple() bool {
	return k == PickerOpenFiles
}

// Save reports whether the picker writes a new file.
func (k PickerKind) Save() bool {
	return k == PickerSaveFile
}

// Mode is how a tab is being used.
type Mode struct {
	Kind   ModeKind
	Picker PickerKind
}

// Browse returns the browsing mode.
func Browse() Mode {
	return Mode{Kind: ModeBrowse}
}

// Picker returns a picker mode of the given kind.
func Picker(kind PickerKind) Mode {
	return Mode{Kind: ModePicker, Picker: kind}
}

// Multiple reports whether multi-selection is allowed in this mode.
func (m Mode) Multiple() bool {
	if m.Kind == ModePicker {
		return m.Picker.Multiple()
	}
	return true
}

// Save reports whether the mode is a save picker.
func (m Mode) Save() bool {
	return m.Kind == ModePicker && m.Picker.Save()
}
