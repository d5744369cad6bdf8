package editor

// Command is an abstract input delivered to the list editor or the app.
type Command int

const (
	CmdNone Command = iota
	CmdToggleVisualMode
	CmdMoveUp
	CmdMoveDown
	CmdPageUp
	CmdPageDown
	CmdHome
	CmdEnd
	CmdActionPick
	CmdActionDrop
	CmdActionEdit
	CmdActionFixup
	CmdActionReword
	CmdActionSquash
	CmdActionBreak
	CmdSwapSelectedUp
	CmdSwapSelectedDown
	CmdFixupKeepMessage
	CmdFixupKeepMessageWithEditor
	CmdUndo
	CmdRedo
	CmdDelete
	CmdYankHash

	// handled by the app loop
	CmdRebase
	CmdForceRebase
	CmdAbort
	CmdForceAbort
	CmdHelp
	CmdYes
	CmdNo
)

type commandInfo struct {
	name        string
	description string
}

var commandTable = [...]commandInfo{
	CmdNone:                       {"", ""},
	CmdToggleVisualMode:           {"toggle_visual", "Toggle visual mode"},
	CmdMoveUp:                     {"move_up", "Move selection up"},
	CmdMoveDown:                   {"move_down", "Move selection down"},
	CmdPageUp:                     {"page_up", "Move selection up a page"},
	CmdPageDown:                   {"page_down", "Move selection down a page"},
	CmdHome:                       {"home", "Move selection to the first line"},
	CmdEnd:                        {"end", "Move selection to the last line"},
	CmdActionPick:                 {"pick", "Set selected commits to be picked"},
	CmdActionDrop:                 {"drop", "Set selected commits to be dropped"},
	CmdActionEdit:                 {"edit", "Set selected commits to be edited"},
	CmdActionFixup:                {"fixup", "Set selected commits to be fixed up"},
	CmdActionReword:               {"reword", "Set selected commits to be reworded"},
	CmdActionSquash:               {"squash", "Set selected commits to be squashed"},
	CmdActionBreak:                {"break", "Insert or remove a break line"},
	CmdSwapSelectedUp:             {"swap_up", "Move selected lines up"},
	CmdSwapSelectedDown:           {"swap_down", "Move selected lines down"},
	CmdFixupKeepMessage:           {"fixup_keep_message", "Fixup keeping this commit's message (-C)"},
	CmdFixupKeepMessageWithEditor: {"fixup_keep_message_editor", "Fixup keeping the message, open editor (-c)"},
	CmdUndo:                       {"undo", "Undo the last change"},
	CmdRedo:                       {"redo", "Redo the last undone change"},
	CmdDelete:                     {"delete", "Delete selected lines"},
	CmdYankHash:                   {"yank_hash", "Copy selected hashes to the clipboard"},
	CmdRebase:                     {"rebase", "Write the todo list and rebase"},
	CmdForceRebase:                {"force_rebase", "Rebase without confirmation"},
	CmdAbort:                      {"abort", "Abort the rebase"},
	CmdForceAbort:                 {"force_abort", "Abort without confirmation"},
	CmdHelp:                       {"help", "Show help"},
	CmdYes:                        {"yes", "Confirm"},
	CmdNo:                         {"no", "Cancel"},
}

var commandsByName = func() map[string]Command {
	m := make(map[string]Command, len(commandTable))
	for i, info := range commandTable {
		if info.name != "" {
			m[info.name] = Command(i)
		}
	}
	return m
}()

// ParseCommand resolves a configured command name.
func ParseCommand(name string) (Command, bool) {
	c, ok := commandsByName[name]
	return c, ok
}

func (c Command) valid() bool {
	return c >= 0 && int(c) < len(commandTable)
}

func (c Command) String() string {
	if !c.valid() || c == CmdNone {
		return "none"
	}
	return commandTable[c].name
}

// Description is the help text for the command.
func (c Command) Description() string {
	if !c.valid() {
		return ""
	}
	return commandTable[c].description
}

// IsAppLevel reports whether the app loop, not the list, handles c.
func (c Command) IsAppLevel() bool {
	return c >= CmdRebase
}
