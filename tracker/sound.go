package tracker

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	sampleRate    = beep.SampleRate(44100)
	chimeLength   = 1500 * time.Millisecond
	chimeFreq     = 880.0
	chimeOvertone = 1320.0
	chimeVolume   = 0.25
)

var (
	speakerOnce sync.Once
	speakerErr  error
)

// chime returns a decaying two-tone bell of length d.
func chime(d time.Duration) beep.Streamer {
	total := sampleRate.N(d)
	pos := 0

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}

		for i := range samples {
			if pos >= total {
				return i, true
			}

			t := float64(pos) / float64(sampleRate)
			env := math.Exp(-4 * float64(pos) / float64(total))

			v := chimeVolume * env * (math.Sin(2*math.Pi*chimeFreq*t) +
				0.5*math.Sin(2*math.Pi*chimeOvertone*t))

			samples[i] = [2]float64{v, v}
			pos++
		}

		return len(samples), true
	})
}

// playChime plays the end of day bell and blocks until it finishes.
func playChime() error {
	speakerOnce.Do(func() {
		bufferSize := 10
		speakerErr = speaker.Init(
			sampleRate,
			sampleRate.N(time.Duration(int(time.Second)/bufferSize)),
		)
	})

	if speakerErr != nil {
		return speakerErr
	}

	done := make(chan struct{})

	speaker.Play(beep.Seq(chime(chimeLength), beep.Callback(func() {
		close(done)
	})))

	<-done

	return nil
}
