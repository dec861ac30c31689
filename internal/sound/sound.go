//go:build !ci

package sound

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// SoundManager plays short effects and loops background music. Music honors
// the persisted mute preference; effects always play.
type SoundManager struct {
	buffers map[string]*beep.Buffer
	tracks  []string
	enabled bool

	musicEnabled bool
	musicCtrl    *beep.Ctrl
	sampleRate   beep.SampleRate
}

func NewSoundManager() *SoundManager {
	return &SoundManager{
		buffers: make(map[string]*beep.Buffer),
		enabled: false,
	}
}

func (sm *SoundManager) Init() error {
	sampleRate := beep.SampleRate(44100)
	// Init speaker with smaller buffer for lower latency
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}
	sm.enabled = true
	sm.sampleRate = sampleRate

	if err := sm.loadSoundFiles("assets/sounds", sampleRate); err != nil {
		return err
	}
	sm.scanMusicTracks("assets/audio")
	return nil
}

// loadSoundFiles loads all effect files from the given directory.
func (sm *SoundManager) loadSoundFiles(soundDir string, sampleRate beep.SampleRate) error {
	files, err := os.ReadDir(soundDir)
	if err != nil {
		// It's okay if directory doesn't exist, just no sounds
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read sound directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}
		name := file.Name()
		ext := strings.ToLower(filepath.Ext(name))
		baseName := strings.TrimSuffix(name, filepath.Ext(name))

		if ext != ".mp3" && ext != ".wav" {
			continue
		}

		if err := sm.loadSoundFile(soundDir, name, baseName, ext, sampleRate); err != nil {
			// Continue loading other files even if one fails
			continue
		}
	}

	return nil
}

// loadSoundFile loads a single effect file into the buffer.
func (sm *SoundManager) loadSoundFile(soundDir, name, baseName, ext string, sampleRate beep.SampleRate) error {
	path := filepath.Join(soundDir, name)
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch ext {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	}

	if err != nil {
		return err
	}
	defer func() { _ = streamer.Close() }()

	// Resample if necessary
	var resampled beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		resampled = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	standardFormat := beep.Format{
		SampleRate:  sampleRate,
		NumChannels: 2,
		Precision:   4,
	}

	buffer := beep.NewBuffer(standardFormat)
	buffer.Append(resampled)

	sm.buffers[baseName] = buffer
	return nil
}

// scanMusicTracks records the background-music files without decoding them;
// tracks stream on demand instead of living in memory.
func (sm *SoundManager) scanMusicTracks(musicDir string) {
	files, err := os.ReadDir(musicDir)
	if err != nil {
		return
	}
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(file.Name()))
		if ext != ".mp3" && ext != ".wav" {
			continue
		}
		sm.tracks = append(sm.tracks, filepath.Join(musicDir, file.Name()))
	}
}

// Play plays a named effect.
func (sm *SoundManager) Play(name string) {
	if !sm.enabled {
		return
	}

	buffer, ok := sm.buffers[name]
	if !ok {
		// Silent failure if sound not found
		return
	}

	speaker.Play(buffer.Streamer(0, buffer.Len()))
}

// SetMusicEnabled starts or pauses the background music.
func (sm *SoundManager) SetMusicEnabled(enabled bool) {
	if !sm.enabled {
		return
	}
	sm.musicEnabled = enabled

	speaker.Lock()
	if sm.musicCtrl != nil {
		sm.musicCtrl.Paused = !enabled
		speaker.Unlock()
		return
	}
	speaker.Unlock()

	if enabled {
		sm.startMusic()
	}
}

// MusicEnabled reports whether background music is currently on.
func (sm *SoundManager) MusicEnabled() bool {
	return sm.musicEnabled
}

// startMusic streams a random track and chains into the next one when it
// ends.
func (sm *SoundManager) startMusic() {
	if len(sm.tracks) == 0 {
		return
	}

	path := sm.tracks[rand.Intn(len(sm.tracks))]
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	}
	if err != nil {
		_ = f.Close()
		return
	}

	var stream beep.Streamer = streamer
	if format.SampleRate != sm.sampleRate {
		stream = beep.Resample(4, format.SampleRate, sm.sampleRate, streamer)
	}

	ctrl := &beep.Ctrl{Streamer: stream}
	sm.musicCtrl = ctrl

	speaker.Play(beep.Seq(ctrl, beep.Callback(func() {
		_ = streamer.Close()
		_ = f.Close()
		speaker.Lock()
		sm.musicCtrl = nil
		speaker.Unlock()
		if sm.musicEnabled {
			sm.startMusic()
		}
	})))
}

func (sm *SoundManager) Close() {
	sm.enabled = false
}
