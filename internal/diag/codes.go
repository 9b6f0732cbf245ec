package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические (зарезервировано за токенизатором)
	LexInfo Code = 1000

	// Парсерные (зарезервируем)
	SynInfo Code = 2000

	// Каноникализация
	CanInfo Code = 3000
	// IdentIssue flags identifier spellings that violate style conventions
	// (e.g. repeated underscores). Always a warning, never blocks parsing.
	IdentIssue        Code = 3001
	CanCapacityFailed Code = 3002
)

var codeDescription = map[Code]string{
	UnknownCode:       "Unknown error",
	LexInfo:           "Lexical information",
	SynInfo:           "Syntax information",
	CanInfo:           "Canonicalization information",
	IdentIssue:        "Identifier style issue",
	CanCapacityFailed: "Identifier store capacity exceeded",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("CAN%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
