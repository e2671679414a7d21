package models

// CropRegion is the area of a result image that holds one prize category's numbers,
// expressed in percent of the image size
type CropRegion struct {
	BoxID    string        `bson:"boxId" json:"boxId"`
	Category PrizeCategory `bson:"category" json:"category"`
	Top      float64       `bson:"top" json:"top"`
	Left     float64       `bson:"left" json:"left"`
	Width    float64       `bson:"width" json:"width"`
	Height   float64       `bson:"height" json:"height"`
}

// Valid reports whether the region lies inside the image
func (c CropRegion) Valid() bool {
	return c.Top >= 0 && c.Top < 100 &&
		c.Left >= 0 && c.Left < 100 &&
		c.Width > 0 && c.Width <= 100 &&
		c.Height > 0 && c.Height <= 100
}

// DefaultCropRegions returns the regions used until an operator adjusts them
func DefaultCropRegions() []CropRegion {
	return []CropRegion{
		{BoxID: "box1", Category: PrizeFirst, Top: 35, Left: 45, Width: 40, Height: 10},
		{BoxID: "box2", Category: PrizeSecond, Top: 53, Left: 45, Width: 50, Height: 10},
		{BoxID: "box3", Category: PrizeThird, Top: 63, Left: 45, Width: 50, Height: 8},
		{BoxID: "box4", Category: PrizeFourth, Top: 72, Left: 45, Width: 50, Height: 8},
		{BoxID: "box5", Category: PrizeFifth, Top: 85, Left: 5, Width: 90, Height: 15},
	}
}
