package replay

// Version of the replay format
const Version = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F   int     `msgpack:"f"`             // Frame number
	MX  float64 `msgpack:"mx"`            // MouseX (world)
	MY  float64 `msgpack:"my"`            // MouseY (world)
	P   bool    `msgpack:"p,omitempty"`   // Pressed
	H   bool    `msgpack:"h,omitempty"`   // Held
	R   bool    `msgpack:"r,omitempty"`   // Released
	A   bool    `msgpack:"a,omitempty"`   // Ability
	C   bool    `msgpack:"c,omitempty"`   // Cancel
	Rst bool    `msgpack:"rst,omitempty"` // Restart
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `msgpack:"version"`
	Seed      int64        `msgpack:"seed"`
	Level     string       `msgpack:"level"`
	StartTime string       `msgpack:"startTime"`
	Frames    []FrameInput `msgpack:"frames"`
}
