package parser

import "family-task-parser/internal/model"

// buildSegments covers raw with text gaps and typed segments, in order.
func buildSegments(raw string, resolved []model.Match) []model.Segment {
	segments := make([]model.Segment, 0, 2*len(resolved)+1)
	pos := 0
	for _, m := range resolved {
		if m.Start > pos {
			segments = append(segments, textSegment(raw, pos, m.Start))
		}
		segments = append(segments, model.Segment{
			Text:  raw[m.Start:m.End],
			Type:  m.Category,
			Value: m.Value,
			Start: m.Start,
			End:   m.End,
		})
		pos = m.End
	}
	if pos < len(raw) {
		segments = append(segments, textSegment(raw, pos, len(raw)))
	}
	return segments
}

func textSegment(raw string, start, end int) model.Segment {
	return model.Segment{Text: raw[start:end], Type: model.SegmentText, Start: start, End: end}
}
