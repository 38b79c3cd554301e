// actor.go is the collector goroutine: the only code that touches the store
// while the collector is active.

package errreport

// run processes messages in arrival order until shutdown or until the
// mailbox is closed and drained. Both end the loop; only shutdown, which
// has a session waiting for it, hands over the store.
func (c *Collector[E]) run(store *Store[E]) {
	defer close(c.done)

	var batch []message[E]
	for {
		var ok bool
		batch, ok = c.box.receive(batch)
		if !ok {
			c.logf("collector %s disconnected, discarding %d records", c.name, store.Len())
			return
		}

		for i := range batch {
			if stop := c.handle(store, &batch[i]); stop {
				c.logf("collector %s stopped with %d records", c.name, store.Len())
				c.final = store
				return
			}
			// Release references held by the message.
			batch[i] = message[E]{}
		}
	}
}

// handle applies one message. It reports true on shutdown.
func (c *Collector[E]) handle(store *Store[E], msg *message[E]) bool {
	c.metrics.observe(msg.kind)

	switch msg.kind {
	case msgReport:
		key := store.insert(msg.err, c.now())
		msg.reply <- key
		c.metrics.setRecords(store.Len())

	case msgUpdate:
		rec := store.getMut(msg.key)
		if rec == nil {
			c.logf("update for unknown key %s ignored", msg.key)
			c.metrics.ignoredUpdate()
			return false
		}
		rec.SetExtra(msg.extra)

	case msgVisit:
		store.forEach(msg.visit)

	case msgVisitMutable:
		store.forEachMut(msg.mutate)

	case msgFlush:
		close(msg.ack)

	case msgShutdown:
		return true
	}
	return false
}
