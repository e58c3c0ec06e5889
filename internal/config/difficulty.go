package config

import "time"

// SpawnInterval returns the spawn interval as a duration.
func (c CatchConfig) SpawnInterval() time.Duration {
	return time.Duration(c.Spawn.IntervalMS) * time.Millisecond
}

// fallFrames is the number of frames an object needs to cross the field.
func (c CatchConfig) fallFrames() float64 {
	return c.Objects.FallSeconds * float64(c.Objects.FrameRate)
}

// BaseFallSpeed returns the per-frame fall speed that carries an object from
// just above the top edge to just below the bottom edge in FallSeconds.
func (c CatchConfig) BaseFallSpeed() float64 {
	distance := c.Field.Height + c.Objects.Radius*2
	return distance / c.fallFrames()
}

// MaxDriftSpeed returns the largest horizontal speed on the hard level, chosen
// so an object cannot travel more than DriftFraction of the field width while falling.
func (c CatchConfig) MaxDriftSpeed() float64 {
	return c.Field.Width * c.Hard.DriftFraction / c.fallFrames()
}

// FallSpeedRange returns the bounds of the hard-level fall speed.
func (c CatchConfig) FallSpeedRange() (lo, hi float64) {
	base := c.BaseFallSpeed()
	return base * (1 - c.Hard.SpeedJitter), base * (1 + c.Hard.SpeedJitter)
}

// FrameDuration returns the length of one simulation frame.
func (c CatchConfig) FrameDuration() time.Duration {
	return time.Second / time.Duration(c.Objects.FrameRate)
}
