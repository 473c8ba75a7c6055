package bench

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// CurrentProfileVersion is bumped whenever the profile schema or the
// calibration methodology changes, invalidating older files.
const CurrentProfileVersion = 1

// ProfileFileName is the persisted profile's name in the home directory.
const ProfileFileName = ".polycalc_bench.json"

// Profile records a calibrated trial count together with the hardware
// fingerprint it was measured on. A profile from different hardware or a
// different Go toolchain is rejected rather than silently reused.
type Profile struct {
	ProfileVersion int    `json:"profile_version"`
	NumCPU         int    `json:"num_cpu"`
	GOARCH         string `json:"goarch"`
	GOOS           string `json:"goos"`
	GoVersion      string `json:"go_version"`
	WordSize       int    `json:"word_size"`

	// CalibratedTrials is the trial count producing roughly the target
	// campaign duration on this host.
	CalibratedTrials int `json:"calibrated_trials"`
	// CalibrationDegree is the polynomial degree the calibration measured.
	CalibrationDegree int `json:"calibration_degree"`

	CalibratedAt    time.Time `json:"calibrated_at"`
	CalibrationTime string    `json:"calibration_time"`
}

// NewProfile creates a profile stamped with the current hardware fingerprint.
//
// Returns:
//   - *Profile: The new profile, without calibration results.
func NewProfile() *Profile {
	return &Profile{
		ProfileVersion: CurrentProfileVersion,
		NumCPU:         runtime.NumCPU(),
		GOARCH:         runtime.GOARCH,
		GOOS:           runtime.GOOS,
		GoVersion:      runtime.Version(),
		WordSize:       32 << (^uint(0) >> 63),
		CalibratedAt:   time.Now(),
	}
}

// IsValid reports whether the profile was calibrated on the current hardware
// with the current toolchain.
func (p *Profile) IsValid() bool {
	return p.ProfileVersion == CurrentProfileVersion &&
		p.NumCPU == runtime.NumCPU() &&
		p.GOARCH == runtime.GOARCH &&
		p.GOOS == runtime.GOOS &&
		p.GoVersion == runtime.Version() &&
		p.CalibratedTrials > 0
}

// SaveProfile writes the profile to the given path as indented JSON.
func (p *Profile) SaveProfile(path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// loadProfile reads a profile from the given path.
func loadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DefaultProfilePath returns the profile location in the user's home
// directory, or an empty string when the home directory cannot be resolved.
func DefaultProfilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ProfileFileName)
}

// LoadValidProfile loads the profile at path and returns it only when it
// matches the current hardware and the requested degree. Any failure is
// reported as a simple miss: calibration profiles are an optimization, never
// a requirement.
//
// Parameters:
//   - path: The profile file location.
//   - degree: The polynomial degree the campaign will use.
//
// Returns:
//   - *Profile: The valid profile, or nil on any miss.
func LoadValidProfile(path string, degree int) *Profile {
	if path == "" {
		return nil
	}
	p, err := loadProfile(path)
	if err != nil {
		return nil
	}
	if !p.IsValid() || p.CalibrationDegree != degree {
		return nil
	}
	return p
}
