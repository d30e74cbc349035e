package video

import (
	"time"
)

// Throttle returns a transform that passes at most rate frames per second
// and releases the rest unread. Frames are paced against a fixed schedule,
// so a source running at a multiple of rate is decimated evenly. A rate
// <= 0 passes every frame.
func Throttle(rate float32) TransformFunc {
	return func(r Reader) Reader {
		if rate <= 0 {
			return r
		}
		interval := time.Duration(float64(time.Second) / float64(rate))
		// frames arriving this early still count as on time
		slack := interval / 4
		var (
			next    time.Time
			dropped int
		)
		return ReaderFunc(func() (*Frame, func(), error) {
			for {
				f, release, err := r.Read()
				if err != nil {
					return nil, noop, err
				}
				now := time.Now()
				if !next.IsZero() && now.Before(next.Add(-slack)) {
					dropped++
					if release != nil {
						release()
					}
					continue
				}
				// restart the schedule on the first frame or after a stall
				if next.IsZero() || now.Sub(next) > interval {
					next = now
				}
				next = next.Add(interval)
				if dropped > 0 {
					logger.Tracef("throttle dropped %d frames", dropped)
					dropped = 0
				}
				return f, release, nil
			}
		})
	}
}
