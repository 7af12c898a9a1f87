package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("America/New_York")
	if err != nil {
		panic(err)
	}
}

// force timezone to be US eastern because wrestling cards are announced
// against east coast air dates, and servers in other regions will
// otherwise shift dates when manipulating <time.Time>.Year()/Month()/Day()
func Now() time.Time {
	return time.Now().In(Location)
}
