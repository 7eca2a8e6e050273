package replay

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	N  bool `json:"n,omitempty"`  // Next
	P  bool `json:"p,omitempty"`  // Prev
	CH bool `json:"ch,omitempty"` // CycleHorizontal
	CV bool `json:"cv,omitempty"` // CycleVertical
	MU bool `json:"mu,omitempty"` // MarginUp
	MD bool `json:"md,omitempty"` // MarginDown
	SU bool `json:"su,omitempty"` // SpacingUp
	SD bool `json:"sd,omitempty"` // SpacingDown
	TW bool `json:"tw,omitempty"` // ToggleAutoWidth
	WU bool `json:"wu,omitempty"` // WidthUp
	WD bool `json:"wd,omitempty"` // WidthDown
	TH bool `json:"th,omitempty"` // ToggleHidden
	TO bool `json:"to,omitempty"` // ToggleOrientation
	TI bool `json:"ti,omitempty"` // ToggleInspect
	TP bool `json:"tp,omitempty"` // TogglePause
	Q  bool `json:"q,omitempty"`  // Quit
	MX int  `json:"mx"`           // MouseX
	MY int  `json:"my"`           // MouseY
	MC bool `json:"mc,omitempty"` // MouseClick
}

// ReplayData contains all data needed to replay an editing session
type ReplayData struct {
	Version   string       `json:"version"`
	Layout    string       `json:"layout"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// Input is one frame of input as seen by the showcase
type Input struct {
	Next              bool
	Prev              bool
	CycleHorizontal   bool
	CycleVertical     bool
	MarginUp          bool
	MarginDown        bool
	SpacingUp         bool
	SpacingDown       bool
	ToggleAutoWidth   bool
	WidthUp           bool
	WidthDown         bool
	ToggleHidden      bool
	ToggleOrientation bool
	ToggleInspect     bool
	TogglePause       bool
	Quit              bool
	MouseX            int
	MouseY            int
	MouseClick        bool
}

func toFrame(f int, in Input) FrameInput {
	return FrameInput{
		F:  f,
		N:  in.Next,
		P:  in.Prev,
		CH: in.CycleHorizontal,
		CV: in.CycleVertical,
		MU: in.MarginUp,
		MD: in.MarginDown,
		SU: in.SpacingUp,
		SD: in.SpacingDown,
		TW: in.ToggleAutoWidth,
		WU: in.WidthUp,
		WD: in.WidthDown,
		TH: in.ToggleHidden,
		TO: in.ToggleOrientation,
		TI: in.ToggleInspect,
		TP: in.TogglePause,
		Q:  in.Quit,
		MX: in.MouseX,
		MY: in.MouseY,
		MC: in.MouseClick,
	}
}

func (fi FrameInput) input() Input {
	return Input{
		Next:              fi.N,
		Prev:              fi.P,
		CycleHorizontal:   fi.CH,
		CycleVertical:     fi.CV,
		MarginUp:          fi.MU,
		MarginDown:        fi.MD,
		SpacingUp:         fi.SU,
		SpacingDown:       fi.SD,
		ToggleAutoWidth:   fi.TW,
		WidthUp:           fi.WU,
		WidthDown:         fi.WD,
		ToggleHidden:      fi.TH,
		ToggleOrientation: fi.TO,
		ToggleInspect:     fi.TI,
		TogglePause:       fi.TP,
		Quit:              fi.Q,
		MouseX:            fi.MX,
		MouseY:            fi.MY,
		MouseClick:        fi.MC,
	}
}
