package model

// Assignment is the itinerary produced for one boat over one shift.
type Assignment struct {
	BoatID      string
	Events      []int   // visited event ids, in visit order
	TotalWeight float64 // sum of risk*duration over visited events
	Utilization float64 // fraction of the shift budget consumed
	TimeUsed    float64 // seconds spent traveling, waiting and dwelling
}
