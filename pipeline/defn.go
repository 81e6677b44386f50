package pipeline

import "sort"

// State and event Ids
const (
	sInitId   StateId = 0
	sFieldId  StateId = 1
	sIndexId  StateId = 2
	sTableId  StateId = 3
	sGroupsId StateId = 4
	sDoneId   StateId = 5

	eValidId         EventId = 0
	eBuiltId         EventId = 1
	eIndexedId       EventId = 2
	eTableCompleteId EventId = 3
	eGroupedId       EventId = 4
)

// defn of events
var eValid = Event{Dest: sFieldId, Desc: "q is a prime >= 2"}
var eBuilt = Event{Dest: sIndexId, Desc: "GF(q^2) and its generator built"}
var eIndexed = Event{Dest: sTableId, Desc: "discrete log index ready"}
var eTableComplete = Event{Dest: sGroupsId, Desc: "every cell of the table computed"}
var eGrouped = Event{Dest: sDoneId, Desc: "rows grouped"}

// defn of states
var sInit = State{Action: &validateAction{}, Events: Events{eValidId: eValid}}
var sField = State{Action: &fieldAction{}, Events: Events{eBuiltId: eBuilt}}
var sIndex = State{Action: &indexAction{}, Events: Events{eIndexedId: eIndexed}}
var sTable = State{Action: &tableAction{}, Events: Events{eTableCompleteId: eTableComplete}}
var sGroups = State{Action: &groupAction{}, Events: Events{eGroupedId: eGrouped}}
var sDone = State{}

var stateMap = States{
	sInitId:   sInit,
	sFieldId:  sField,
	sIndexId:  sIndex,
	sTableId:  sTable,
	sGroupsId: sGroups,
	sDoneId:   sDone,
}

// sortedEvents fixes the order in which events are checked.
func sortedEvents(events Events) []EventId {
	ids := make([]EventId, 0, len(events))
	for id := range events {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
