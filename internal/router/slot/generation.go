package slot

// OpportunityType returns cross-sell, upsell or renewal.
func (e *Extractor) OpportunityType(text string) Optional[string] {
	return lookup(e.slots.OpportunityTypes.Lookup(text))
}

// Segment returns the customer segment named in the utterance.
func (e *Extractor) Segment(text string) Optional[string] {
	return lookup(e.slots.Segments.Lookup(text))
}

// Product returns the first known product mentioned, in table order.
func (e *Extractor) Product(text string) Optional[string] {
	return lookup(e.slots.Products.Lookup(text))
}

func lookup(v string, ok bool) Optional[string] {
	if ok {
		return Some(v)
	}
	return None[string]()
}
