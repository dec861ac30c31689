package protocol

// Local rejection codes. These never go on the wire; the authority re-checks
// everything. They exist so the UI can tell rejection kinds apart.
const (
	ErrCodeUnknown       = 1000
	ErrCodeAlreadyInGame = 2001
	ErrCodeNotInGame     = 2002
	ErrCodeNotYourTurn   = 3001
	ErrCodeCannotBegin   = 3002
	ErrCodeNoIdentity    = 4001
)
