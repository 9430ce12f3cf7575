// Package xcheck compares disassembly against golang.org/x/arch's arm64asm
// decoder, which serves as an independent reference.
package xcheck

import (
	"encoding/binary"
	"strings"

	"golang.org/x/arch/arm64/arm64asm"
)

// Reference returns arm64asm's GNU-syntax rendering of word.
func Reference(word uint32) (string, error) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], word)

	inst, err := arm64asm.Decode(buf[:])
	if err != nil {
		return "", err
	}
	return arm64asm.GNUSyntax(inst), nil
}

// Mnemonic returns the lowercased first token of an assembly line.
func Mnemonic(text string) string {
	text = strings.TrimSpace(text)
	if i := strings.IndexByte(text, ' '); i >= 0 {
		text = text[:i]
	}
	return strings.ToLower(text)
}

// Compare reports the reference rendering of word and whether its mnemonic
// agrees with ours. A word the reference cannot decode returns its error
// and no agreement.
func Compare(word uint32, ours string) (ref string, agree bool, err error) {
	ref, err = Reference(word)
	if err != nil {
		return "", false, err
	}
	return ref, Mnemonic(ref) == Mnemonic(ours), nil
}
