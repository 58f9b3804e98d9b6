package pipeline

// pipelineStep is a single stage of the trip identification run.
type pipelineStep interface {
	execute(state *clusterState) error
}

// clusterState is the shared state threaded through the steps.
type clusterState struct {
	settings Settings
	include  IncludeFunc
	pipe     *Pipeline

	input    []Transaction
	dated    []datedTransaction
	tagged   []datedTransaction
	included []datedTransaction
	groups   [][]datedTransaction
	// assignments maps transaction id to the trip name its group received.
	assignments map[string]string
	result      []Transaction
}

// Step 1: validateStep parses every transaction date so later steps never see
// a malformed record.
type validateStep struct{}

func (validateStep) execute(state *clusterState) error {
	dated, err := validateBatch(state.input, state.pipe.loc)
	if err != nil {
		return err
	}
	state.dated = dated
	return nil
}

// Step 2: classifyStep applies automatic bill/transfer tagging and hashtag
// extraction against the original input set.
type classifyStep struct{}

func (classifyStep) execute(state *clusterState) error {
	state.tagged = classifyBatch(state.dated)
	return nil
}

// Step 3: filterStep keeps only transactions eligible for clustering.
type filterStep struct{}

func (filterStep) execute(state *clusterState) error {
	for _, tx := range state.tagged {
		if state.include(tx.Transaction, state.settings) {
			state.included = append(state.included, tx)
		}
	}
	return nil
}

// Step 4: groupStep buckets the eligible transactions into contiguous
// date-proximity groups.
type groupStep struct{}

func (groupStep) execute(state *clusterState) error {
	state.groups = groupByConsecutiveDates(state.included, state.settings.MaxDaysBetween)
	return nil
}

// Step 5: nameStep derives a name per qualifying group and records which trip
// each member belongs to.
type nameStep struct{}

func (nameStep) execute(state *clusterState) error {
	state.assignments = make(map[string]string)
	for _, group := range state.groups {
		name, _ := generateTripName(group)
		for _, tx := range group {
			state.assignments[tx.ID] = name
		}
	}
	return nil
}

// Step 6: annotateStep stamps tripName onto every input transaction, in input
// order. A transaction's own trip hashtag beats its group assignment;
// transactions with neither keep a nil tripName.
type annotateStep struct{}

func (annotateStep) execute(state *clusterState) error {
	state.result = make([]Transaction, len(state.tagged))
	for i, tx := range state.tagged {
		out := tx.Transaction

		tripTags := filterTripHashtags(out.Hashtags)
		assigned, hasAssignment := state.assignments[out.ID]

		switch {
		case len(tripTags) > 0:
			name := tripTags[0]
			out.TripName = &name
			out.IsAutoGeneratedTrip = false
		case hasAssignment:
			name := assigned
			out.TripName = &name
			out.IsAutoGeneratedTrip = true
		default:
			out.TripName = nil
			out.IsAutoGeneratedTrip = false
		}
		state.result[i] = out
	}
	return nil
}

// newClusterSteps is the standard six-step trip identification sequence.
func newClusterSteps() []pipelineStep {
	return []pipelineStep{
		validateStep{},
		classifyStep{},
		filterStep{},
		groupStep{},
		nameStep{},
		annotateStep{},
	}
}
