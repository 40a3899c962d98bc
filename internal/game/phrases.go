package game

// Phrases shown when a run clears the final level. Purely cosmetic, no
// effect on the state machine.
var successPhrases = []string{
	"Unbelievable memory!",
	"Flawless run!",
	"Perfect recall, every single time!",
	"You out-simoned Simon!",
	"Twenty-five rounds of pure focus!",
	"The colors bow before you!",
	"Not a single slip. Incredible!",
	"Sequence master!",
}
