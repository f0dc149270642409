package constants

import "time"

const DefaultRefreshInterval = 30 * time.Second

// composite group states
const StateOn = "on"
const StateOff = "off"
const StateUnknown = "unknown"

// light attributes
const AttrBrightness = "brightness"
const AttrColorTemp = "color_temp"
const AttrXYColor = "xy_color"
const AttrRGBColor = "rgb_color"

// group attributes
const AttrEntityID = "entity_id"
const AttrFriendlyName = "friendly_name"
const AttrAuto = "auto"

// member sources
const SourceFile = "file"
const SourceHue = "hue"

const HueRequestInterval = 100 * time.Millisecond
const HueMaxBrightness = 255
