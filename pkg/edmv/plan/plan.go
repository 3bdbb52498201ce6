package plan

// Build compiles the input list and the raw edited listing into an
// executable plan: Validate, then Classify, then Resolve. Any failure
// aborts with zero filesystem changes.
func Build(inputs []string, edited string, opts Options) (*Plan, error) {
	specs, err := Validate(inputs, edited, opts)
	if err != nil {
		return nil, err
	}

	classified, err := Classify(inputs, specs, opts)
	if err != nil {
		return nil, err
	}

	renames, err := Resolve(classified.Renames, classified.Pending, NewTempNamer())
	if err != nil {
		return nil, err
	}

	return &Plan{Deletes: classified.Deletes, Renames: renames}, nil
}
