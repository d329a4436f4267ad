package formula

// Stream delay stage names, in pipeline order.
const (
	StageEncoding   = "Encoding"
	StageNetwork    = "Network"
	StageBuffering  = "Buffering"
	StageSegmenting = "Segmenting"
)

// StreamDelayInput describes a live pipeline. All fields are expected >= 0.
type StreamDelayInput struct {
	EncoderDelayMs     float64
	PlayerBufferSec    float64
	NetworkLatencyMs   float64
	SegmentDurationSec float64
}

// DelayStage is one term of the total delay.
type DelayStage struct {
	Name  string
	Ms    float64
	Share float64 // percent of the total, 0 when the total is 0
}

// StreamDelayResult is the glass-to-glass estimate.
type StreamDelayResult struct {
	TotalMs float64
	Stages  []DelayStage
}

// TotalSec returns the total delay in seconds.
func (r StreamDelayResult) TotalSec() float64 {
	return r.TotalMs / 1000
}

// StreamDelay sums encoder, network, buffer and segment delays.
func StreamDelay(in StreamDelayInput) StreamDelayResult {
	terms := [4]struct {
		name string
		ms   float64
	}{
		{StageEncoding, in.EncoderDelayMs},
		{StageNetwork, in.NetworkLatencyMs},
		{StageBuffering, in.PlayerBufferSec * 1000},
		{StageSegmenting, in.SegmentDurationSec * 1000},
	}

	total := in.EncoderDelayMs + in.NetworkLatencyMs + in.PlayerBufferSec*1000 + in.SegmentDurationSec*1000

	stages := make([]DelayStage, 0, len(terms))
	for _, t := range terms {
		share := 0.0
		if total > 0 {
			share = t.ms / total * 100
		}
		stages = append(stages, DelayStage{Name: t.name, Ms: t.ms, Share: share})
	}

	return StreamDelayResult{TotalMs: total, Stages: stages}
}
