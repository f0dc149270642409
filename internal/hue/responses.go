package hue

type HueOwner struct {
	RID   string `json:"rid"`
	RType string `json:"rtype"`
}

type HueLight struct {
	Id       string   `json:"id"`
	Owner    HueOwner `json:"owner"`
	Metadata struct {
		Name string `json:"name"`
	} `json:"metadata"`
	On struct {
		On bool `json:"on"`
	} `json:"on"`
	Dimming *struct {
		Brightness float64 `json:"brightness"`
	} `json:"dimming"`
	ColorTemperature *struct {
		// null while the light is in colour mode
		Mirek      *int `json:"mirek"`
		MirekValid bool `json:"mirek_valid"`
	} `json:"color_temperature"`
	Color *struct {
		XY struct {
			X float64 `json:"x"`
			Y float64 `json:"y"`
		} `json:"xy"`
	} `json:"color"`
}

type HueError struct {
	Description string `json:"description"`
}

type LightResponse struct {
	Errors []HueError `json:"errors"`
	Data   []HueLight `json:"data"`
}
