package games

// Choice labels for Calm-or-React.
const (
	ChoiceWait = "wait"
	ChoiceAct  = "act now"
)

// BiasQuestion is one Bias Spotter scenario tagged with the cognitive
// bias it illustrates.
type BiasQuestion struct {
	Scenario string
	Options  []string
	Bias     string
}

// CalmQuestion is one Calm-or-React scenario. The right move is always to
// wait; the game is about resisting the urge to act during the cooldown.
type CalmQuestion struct {
	Scenario string
}

// SpeedQuestion is one timed yes/no statement.
type SpeedQuestion struct {
	Statement string
	Answer    bool
}

// BiasBank holds the Bias Spotter scenarios, in play order.
var BiasBank = []BiasQuestion{
	{
		Scenario: "The market dropped 5% today and you want to sell everything before it gets worse, even though your goals are 20 years away.",
		Options:  []string{"Fear", "Overconfidence", "Herd mentality", "Anchoring"},
		Bias:     "Fear",
	},
	{
		Scenario: "After three winning trades in a row, you decide to put half your savings into a single stock because you've 'figured out the market'.",
		Options:  []string{"Loss aversion", "Overconfidence", "Fear", "Herd mentality"},
		Bias:     "Overconfidence",
	},
	{
		Scenario: "Everyone in your office is buying the same trending coin, so you buy it too without reading anything about it.",
		Options:  []string{"Herd mentality", "Anchoring", "Fear", "Loss aversion"},
		Bias:     "Herd mentality",
	},
	{
		Scenario: "You refuse to sell a stock at a small loss, waiting years for it to 'get back to what I paid', while better options pass by.",
		Options:  []string{"Overconfidence", "Herd mentality", "Loss aversion", "Fear"},
		Bias:     "Loss aversion",
	},
	{
		Scenario: "A stock once traded at 500, so at 300 it feels like a bargain to you, regardless of what the company is worth today.",
		Options:  []string{"Anchoring", "Fear", "Overconfidence", "Herd mentality"},
		Bias:     "Anchoring",
	},
}

// CalmBank holds the Calm-or-React scenarios, in play order.
var CalmBank = []CalmQuestion{
	{Scenario: "Breaking news: your biggest holding is down 8% in an hour. Your finger is on the sell button."},
	{Scenario: "A friend texts you a 'guaranteed 3x in a week' tip and says the window closes tonight."},
	{Scenario: "A flash sale ends in 10 minutes on a gadget you hadn't planned to buy."},
	{Scenario: "Your portfolio app shows red across the board on your morning commute."},
	{Scenario: "An influencer announces the 'last chance' to get into a new token before it lists."},
}

// SpeedBank holds the Speed Test statements, in play order.
var SpeedBank = []SpeedQuestion{
	{Statement: "An emergency fund should come before high-risk investing.", Answer: true},
	{Statement: "Past returns guarantee future performance.", Answer: false},
	{Statement: "Diversification reduces the impact of a single bad bet.", Answer: true},
	{Statement: "Borrowing money to chase a hot stock is a sound strategy.", Answer: false},
	{Statement: "Compounding works better the earlier you start.", Answer: true},
}
