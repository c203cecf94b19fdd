// Package snapshot defines the persisted save format.
//
// A save is an Envelope holding the canonical JSON encoding of a
// state.State, its schema version and an xxhash64 checksum of those exact
// bytes. Envelopes are written as JSON or msgpack. Decoding overlays the
// stored state on fresh defaults, so fields added after a save was written
// come back with their default values.
package snapshot

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/ugorji/go/codec"

	"github.com/LeJamon/goMFS/internal/core/state"
	"github.com/LeJamon/goMFS/internal/core/tier"
)

// CurrentVersion is the schema version written by Encode.
const CurrentVersion = 2

var (
	ErrMalformed          = errors.New("malformed snapshot")
	ErrChecksumMismatch   = errors.New("snapshot checksum mismatch")
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")
	ErrUnknownFormat      = errors.New("unknown snapshot format")
)

// Format selects the envelope encoding.
type Format string

const (
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
)

// ParseFormat validates a format name; empty means JSON.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatMsgpack:
		return FormatMsgpack, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// DetectFormat guesses the encoding of a stored envelope. JSON envelopes
// always start with an object.
func DetectFormat(data []byte) Format {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		return FormatJSON
	}
	return FormatMsgpack
}

// Envelope wraps the serialized state.
type Envelope struct {
	Version  int             `json:"version" codec:"version"`
	SavedAt  int64           `json:"savedAt" codec:"savedAt"`
	Checksum string          `json:"checksum" codec:"checksum"`
	State    json.RawMessage `json:"state" codec:"state"`
}

var msgpackHandle = &codec.MsgpackHandle{WriteExt: true}

// Checksum is the hex xxhash64 of data.
func Checksum(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

// Wrap serializes s into an envelope stamped with savedAt (unix millis).
func Wrap(s *state.State, savedAt int64) (Envelope, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to marshal state: %w", err)
	}
	return Envelope{
		Version:  CurrentVersion,
		SavedAt:  savedAt,
		Checksum: Checksum(data),
		State:    data,
	}, nil
}

// Encode writes s as an envelope in the given format.
func Encode(s *state.State, savedAt int64, f Format) ([]byte, error) {
	env, err := Wrap(s, savedAt)
	if err != nil {
		return nil, err
	}
	return EncodeEnvelope(env, f)
}

// EncodeEnvelope writes env in the given format.
func EncodeEnvelope(env Envelope, f Format) ([]byte, error) {
	switch f {
	case FormatJSON, "":
		data, err := json.Marshal(env)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal envelope: %w", err)
		}
		return data, nil
	case FormatMsgpack:
		var out []byte
		if err := codec.NewEncoderBytes(&out, msgpackHandle).Encode(env); err != nil {
			return nil, fmt.Errorf("failed to encode envelope: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// DecodeEnvelope reads an envelope without validating it.
func DecodeEnvelope(data []byte, f Format) (Envelope, error) {
	var env Envelope
	switch f {
	case FormatJSON, "":
		if err := json.Unmarshal(data, &env); err != nil {
			return env, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	case FormatMsgpack:
		if err := codec.NewDecoderBytes(data, msgpackHandle).Decode(&env); err != nil {
			return env, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	default:
		return env, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if len(env.State) == 0 {
		return env, fmt.Errorf("%w: no state", ErrMalformed)
	}
	return env, nil
}

// Unwrap validates env and restores its state on top of defaults.
func Unwrap(env Envelope) (*state.State, error) {
	if env.Version < 1 || env.Version > CurrentVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, env.Version)
	}
	if env.Checksum != "" || env.Version >= 2 {
		if got := Checksum(env.State); got != env.Checksum {
			return nil, fmt.Errorf("%w: stored %s, computed %s", ErrChecksumMismatch, env.Checksum, got)
		}
	}

	raw := []byte(env.State)
	if env.Version == 1 {
		migrated, err := migrateV1(raw)
		if err != nil {
			return nil, err
		}
		raw = migrated
	}

	s := state.New(state.DefaultCoefficients())
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	sanitize(s)
	return s, nil
}

// Decode reads and validates a save.
func Decode(data []byte, f Format) (*state.State, error) {
	env, err := DecodeEnvelope(data, f)
	if err != nil {
		return nil, err
	}
	return Unwrap(env)
}

// Export renders s as a portable base64 string.
func Export(s *state.State, savedAt int64) (string, error) {
	data, err := Encode(s, savedAt, FormatJSON)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// Import reads a string produced by Export.
func Import(text string) (*state.State, error) {
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return Decode(data, FormatJSON)
}

// sanitize repairs values no valid game can reach so a hand-edited save
// cannot wedge the simulation.
func sanitize(s *state.State) {
	clamp := func(v *int, lo, hi int) {
		if *v < lo {
			*v = lo
		}
		if hi > 0 && *v > hi {
			*v = hi
		}
	}
	clamp(&s.LocalUpgrades.RodLevel, 0, state.MaxLocalLevel)
	clamp(&s.LocalUpgrades.NetLevel, 0, state.MaxLocalLevel)
	clamp(&s.LocalUpgrades.BaitLevel, 0, state.MaxLocalLevel)
	clamp(&s.GeneralUpgrades.CatchFishMultiplier, 1, 0)
	clamp(&s.Nets.Count, 0, 0)
	clamp(&s.FishingQueue, 0, 0)
	clamp(&s.UniverseNumber, 1, 0)
	clamp(&s.ParallelMultiverses, 1, 0)
	clamp(&s.TierCount, 1, 0)
	if !s.CurrentTier.Valid() {
		s.CurrentTier = tier.Pond
	}
	if s.MultiverseMultiplier <= 0 {
		s.MultiverseMultiplier = 1
	}
	if s.FishingDuration <= 0 {
		s.FishingDuration = 1000
	}
	if s.Coefficients.TicksPerSecond < 1 {
		s.Coefficients.TicksPerSecond = state.DefaultCoefficients().TicksPerSecond
	}
	if s.GeneralUpgrades.Unlocked == nil {
		s.GeneralUpgrades.Unlocked = map[string]bool{}
	}
	if s.AutoBuy == nil {
		s.AutoBuy = map[string]bool{}
	}
	for i := range s.Containers {
		if s.Containers[i] == nil {
			s.Containers[i] = []state.ContainerEntry{}
		}
	}
}
