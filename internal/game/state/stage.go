package state

// Stage is a discrete phase of a session's lifecycle. The authority reports
// it as a small integer; everything the client derives from it comes out of
// one lookup table instead of scattered numeric comparisons.
type Stage int

const (
	StageCreated      Stage = iota - 1 // -1: session registered, lobby not yet open
	StageLobby                         // 0: joinable, countdown to auto-start
	StageStarting                      // 1: roster locked, doors being prepared
	StageFirstPick                     // 2: first door-selection round
	StageSwitchChoice                  // 3: stay-or-switch decision
	StageFinalPick                     // 4: final door-selection round
	StageResolution                    // 5: reveal and scoring
)

// Screen is a UI routing target.
type Screen int

const (
	ScreenLanding Screen = iota // main menu, no session
	ScreenLobby                 // waiting room of a session
	ScreenGame                  // in-game doors view
)

// InputKind is the kind of player input a stage accepts from the turn owner.
type InputKind int

const (
	InputNone   InputKind = iota
	InputDoor             // door number
	InputSwitch           // stay-or-switch decision
)

type stageTraits struct {
	screen Screen
	input  InputKind
	timed  bool // the lobby countdown is still running
}

var stageTable = map[Stage]stageTraits{
	StageCreated:      {screen: ScreenLobby, input: InputNone, timed: true},
	StageLobby:        {screen: ScreenLobby, input: InputNone, timed: true},
	StageStarting:     {screen: ScreenLobby, input: InputNone},
	StageFirstPick:    {screen: ScreenGame, input: InputDoor},
	StageSwitchChoice: {screen: ScreenGame, input: InputSwitch},
	StageFinalPick:    {screen: ScreenGame, input: InputDoor},
	StageResolution:   {screen: ScreenGame, input: InputNone},
}

// Valid reports whether the stage is one the client knows how to route.
func (s Stage) Valid() bool {
	_, ok := stageTable[s]
	return ok
}

// Screen returns the routing target for the stage.
func (s Stage) Screen() Screen {
	return stageTable[s].screen
}

// Input returns the input kind the stage accepts from the turn owner.
func (s Stage) Input() InputKind {
	return stageTable[s].input
}

// Timed reports whether the stage countdown is still being projected.
func (s Stage) Timed() bool {
	return stageTable[s].timed
}

func (s Stage) String() string {
	switch s {
	case StageCreated:
		return "created"
	case StageLobby:
		return "lobby"
	case StageStarting:
		return "starting"
	case StageFirstPick:
		return "first-pick"
	case StageSwitchChoice:
		return "switch-choice"
	case StageFinalPick:
		return "final-pick"
	case StageResolution:
		return "resolution"
	}
	return "unknown"
}
