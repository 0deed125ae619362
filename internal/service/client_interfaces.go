package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-ai-feedback/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// AudioPlayer plays synthesized WAV clips on the client machine. Only one
// clip is held at a time; playing a new one releases the previous.
type AudioPlayer interface {
	// Play stores wav and starts playback. It does not wait for the
	// playback to finish.
	Play(ctx context.Context, wav []byte) error

	// Release stops playback and drops the current clip.
	Release() error

	// Close releases everything the player holds. The player is unusable
	// afterwards.
	Close() error
}

// ClientAuthService defines the client-side contract for sign-up, login and
// the locally remembered session.
type ClientAuthService interface {
	// Register validates req, creates the account on the server and stores
	// the returned session locally.
	Register(ctx context.Context, req models.RegisterRequest) (models.LocalSession, error)

	// Login authenticates against the server and stores the session locally.
	Login(ctx context.Context, req models.LoginRequest) (models.LocalSession, error)

	// Restore loads the locally stored session and installs its token.
	// Returns store.ErrLocalSessionNotFound when the user has to log in.
	Restore(ctx context.Context) (models.LocalSession, error)

	// Logout forgets the local session and the token.
	Logout(ctx context.Context) error

	// UpdateCharacter changes the character on the server and, on success,
	// in the local session.
	UpdateCharacter(ctx context.Context, characterID int) (models.LocalSession, error)

	// Characters returns the server's character catalog.
	Characters(ctx context.Context) ([]models.Character, error)
}

// ClientChatService drives the server-side session of the signed-in user.
type ClientChatService interface {
	// Send submits text and plays the synthesized feedback when there is
	// one. Playback problems do not fail the call.
	Send(ctx context.Context, text string) (models.MessageResult, error)

	// Replay fetches and plays the current clip again.
	Replay(ctx context.Context) error

	Session(ctx context.Context) (models.SessionView, error)
	Save(ctx context.Context) (models.SaveResponse, error)
	Clear(ctx context.Context) error
	Resume(ctx context.Context, chatID string) (models.SessionView, error)

	// Logs returns the saved transcripts of one calendar day (YYYY-MM-DD).
	Logs(ctx context.Context, date string) ([]models.ProgressLog, error)
}

// ClientHeartbeat periodically checks that the server answers and reports
// changes of reachability.
type ClientHeartbeat interface {
	// Start launches the background goroutine. Any previously running
	// heartbeat is stopped first. onChange is called on the first probe and
	// whenever the reachability flips.
	Start(ctx context.Context, interval time.Duration, onChange func(online bool))

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
