package journal

// Static journal side-content served alongside the calendar.

type Survey struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Tip struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

var Surveys = []Survey{
	{
		ID:          1,
		Title:       "Month 1 Feedback",
		Description: "Share your initial experience with your hearing device",
	},
	{
		ID:          2,
		Title:       "Device Comfort Survey",
		Description: "Help us understand your comfort level with the device",
	},
	{
		ID:          3,
		Title:       "Sound Quality Assessment",
		Description: "Evaluate the quality of sound in different environments",
	},
	{
		ID:          4,
		Title:       "Daily Usage Patterns",
		Description: "Track how you use your device throughout the day",
	},
}

var Tips = []Tip{
	{
		Title:       "Clean Your Processor Daily",
		Description: "Use a soft, dry cloth to gently clean the external processor. Avoid moisture and harsh chemicals.",
	},
	{
		Title:       "Gradual Sound Exposure",
		Description: "Start in quiet environments and gradually increase exposure to more complex sound situations.",
	},
	{
		Title:       "Practice Listening",
		Description: "Engage in daily listening exercises to help your brain adapt to new sound patterns.",
	},
	{
		Title:       "Stay Connected",
		Description: "Join support groups and connect with others on similar hearing journeys for encouragement.",
	},
}
