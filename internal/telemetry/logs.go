// internal/telemetry/logs.go
package telemetry

// fetchComments appends all chat records newer than the comment watermark,
// then advances the watermark to the maximum ID over the ENTIRE accumulated
// log. Re-scanning everything guards against out-of-order batches from the
// game. Failures leave log and watermark untouched.
func (t *TelemetryInterface) fetchComments() {
	batch, err := t.client.FetchComments(t.lastCommentID)
	if err != nil {
		t.log.Debug().Err(err).Msg("comment fetch skipped")
		return
	}

	t.comments = append(t.comments, batch...)

	for _, c := range t.comments {
		if id, ok := recordID(c); ok && id > t.lastCommentID {
			t.lastCommentID = id
		}
	}
}

// fetchEvents appends the damage records newer than the event watermark,
// then advances the watermark to the ID of the LAST accumulated element.
// Unlike comments, the damage feed is trusted to arrive in append order.
// Failures leave log and watermark untouched.
func (t *TelemetryInterface) fetchEvents() {
	page, err := t.client.FetchEvents(t.lastEventID)
	if err != nil {
		t.log.Debug().Err(err).Msg("event fetch skipped")
		return
	}

	t.events = append(t.events, page.Damage...)

	if n := len(t.events); n > 0 {
		if id, ok := recordID(t.events[n-1]); ok {
			t.lastEventID = id
		}
	}
}
