package enum_test

import (
	"fmt"

	enum "github.com/variantkit/go-enum"
)

// Suit is a plain enum declaration: a struct embedding enum.Instance plus
// the one required EnumValues method.
type Suit struct{ enum.Instance }

func (Suit) EnumValues() any {
	return struct {
		HEARTS   string
		DIAMONDS string
		CLUBS    string
		SPADES   string
	}{"hearts", "diamonds", "clubs", "spades"}
}

func (Suit) EnumLabels() map[any]string {
	return map[any]string{
		"hearts":   "♥ Hearts",
		"diamonds": "♦ Diamonds",
	}
}

func ExampleNew() {
	s, err := enum.New[Suit]("hearts")
	if err != nil {
		panic(err)
	}
	fmt.Println(s.Value(), "/", s.Name(), "/", s.Label())

	_, err = enum.New[Suit]("jokers")
	fmt.Println(err)
	// Output:
	// hearts / HEARTS / ♥ Hearts
	// enum: value jokers (string) is not a constant of Suit
}

func ExampleChoices() {
	for _, c := range enum.Choices[Suit]() {
		fmt.Printf("%v => %s\n", c.Value, c.Label)
	}
	// Output:
	// hearts => ♥ Hearts
	// diamonds => ♦ Diamonds
	// clubs => clubs
	// spades => spades
}

func ExampleInstance_Is() {
	s := enum.Must[Suit]("spades")
	fmt.Println(s.Is("spades"), s.Is("SPADES"), s.Is("hearts"))
	// Output:
	// true true false
}

func ExampleFromName() {
	s, err := enum.FromName[Suit]("CLUBS")
	if err != nil {
		panic(err)
	}
	fmt.Println(s.Value())
	// Output:
	// clubs
}
