package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-hub/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hub/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hub/internal/random"
)

// Variant numbers match the main menu options.
type Variant int

const (
	VariantInfinity Variant = iota + 1
	VariantWord
	VariantObstacles
	VariantInverse
	VariantSUS
	VariantFourByFour
	VariantNumerical
	VariantFiveByFive
	VariantPyramid
	VariantDiamond
	VariantConnect4
	VariantUltimate
	VariantMemory
	VariantStandard
)

var variantNames = map[Variant]string{
	VariantInfinity:   "Infinity Tic-Tac-Toe",
	VariantWord:       "Word Tic-Tac-Toe",
	VariantObstacles:  "Obstacles Tic-Tac-Toe",
	VariantInverse:    "Inverse Tic-Tac-Toe",
	VariantSUS:        "SUS",
	VariantFourByFour: "4x4 Tic-Tac-Toe",
	VariantNumerical:  "Numerical Tic-Tac-Toe",
	VariantFiveByFive: "5x5 Tic-Tac-Toe",
	VariantPyramid:    "Pyramid Tic-Tac-Toe",
	VariantDiamond:    "Diamond Tic-Tac-Toe",
	VariantConnect4:   "Connect 4",
	VariantUltimate:   "Ultimate Tic-Tac-Toe",
	VariantMemory:     "Memory Tic-Tac-Toe",
	VariantStandard:   "Standard Tic-Tac-Toe",
}

// Variants lists every variant in menu order.
func Variants() []Variant {
	variants := make([]Variant, 0, len(variantNames))
	for v := VariantInfinity; v <= VariantStandard; v++ {
		variants = append(variants, v)
	}

	return variants
}

func (v Variant) Valid() bool {
	_, ok := variantNames[v]

	return ok
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}

	return fmt.Sprintf("variant(%d)", int(v))
}

// Symbols returns the symbols of the first and second player.
func (v Variant) Symbols() [2]entity.Cell {
	switch v {
	case VariantSUS:
		return [2]entity.Cell{entity.SymbolS, entity.SymbolU}
	case VariantNumerical:
		return [2]entity.Cell{entity.SymbolO, entity.SymbolX}
	default:
		return [2]entity.Cell{entity.SymbolX, entity.SymbolO}
	}
}

// Dependencies are the collaborators some variants need at construction.
type Dependencies struct {
	Random         random.Source
	DictionaryPath string
}

// New builds a fresh board for the variant.
func New(variant Variant, deps Dependencies) (Board, error) {
	switch variant {
	case VariantInfinity:
		return NewInfinity(), nil
	case VariantWord:
		board, err := LoadWord(deps.DictionaryPath)
		if err != nil {
			return nil, err
		}

		return board, nil
	case VariantObstacles:
		if deps.Random == nil {
			return nil, fmt.Errorf("%s needs a random source", variant)
		}

		return NewObstacles(deps.Random), nil
	case VariantInverse:
		return NewInverse(), nil
	case VariantSUS:
		return NewSUS(), nil
	case VariantFourByFour:
		return NewFourByFour(), nil
	case VariantNumerical:
		return NewNumerical(), nil
	case VariantFiveByFive:
		return NewFiveByFive(), nil
	case VariantPyramid:
		return NewPyramid(), nil
	case VariantDiamond:
		return NewDiamond(), nil
	case VariantConnect4:
		return NewConnect4(), nil
	case VariantUltimate:
		return NewUltimate(), nil
	case VariantMemory:
		return NewMemory(), nil
	case VariantStandard:
		return NewStandard(), nil
	default:
		return nil, fmt.Errorf("%w: %d", apperror.ErrUnknownVariant, int(variant))
	}
}
