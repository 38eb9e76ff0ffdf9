package betting

import (
	"errors"
	"fmt"
)

// Game はイベントで扱う種目
type Game string

const (
	LOL  Game = "LOL"
	PUBG Game = "PUBG"
	FIFA Game = "FIFA"
)

var ErrUnknownGame = errors.New("unknown game")

func Games() []Game {
	return []Game{LOL, PUBG, FIFA}
}

func ParseGame(s string) (Game, error) {
	for _, g := range Games() {
		if string(g) == s {
			return g, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownGame, s)
}

func (g Game) Valid() bool {
	_, err := ParseGame(string(g))
	return err == nil
}
