package worker

// Workers exposes the configured worker count to external test packages.
func (p *BulkProcessor) Workers() int { return p.workers }
