package inst

import "fmt"

type UnknownMnemonicError struct {
	Mnemonic string
}

func (e *UnknownMnemonicError) Error() string {
	return fmt.Sprintf("unknown instruction %q", e.Mnemonic)
}

// UnknownOpcodeError is returned by Table.Match when no entry's encoding fits.
type UnknownOpcodeError struct {
	Opcode uint64
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("no instruction matches opcode %#x", e.Opcode)
}
