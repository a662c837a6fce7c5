package engine

// CardEffect is what drawing a chance card does.
type CardEffect string

const (
	ReceiveFromBank CardEffect = "receive_from_bank"
	PayToBank       CardEffect = "pay_to_bank"
	ReceiveFromEach CardEffect = "receive_from_each"
	JailFree        CardEffect = "jail_free"
	CardGoToJail    CardEffect = "go_to_jail"
)

// Card is one immutable chance catalog entry. IDs are 1-based.
type Card struct {
	ID     int
	Effect CardEffect
	Amount int
	Text   string
}

// chanceCatalog is the fixed 30-card deck. Order matters: the draw
// pointer walks it circularly, it is never shuffled.
var chanceCatalog = []Card{
	{1, ReceiveFromBank, 100, "Bank error in your favor. Collect 100."},
	{2, PayToBank, 50, "Doctor's fee. Pay 50."},
	{3, ReceiveFromBank, 200, "Your investment matures. Collect 200."},
	{4, CardGoToJail, 0, "Go directly to jail."},
	{5, ReceiveFromEach, 25, "It's your birthday. Collect 25 from every player."},
	{6, PayToBank, 100, "Pay hospital fees of 100."},
	{7, JailFree, 0, "Get out of jail free. Keep this card until needed."},
	{8, ReceiveFromBank, 50, "Dividend from the bank. Collect 50."},
	{9, PayToBank, 150, "Pay school fees of 150."},
	{10, ReceiveFromBank, 25, "You won a crossword competition. Collect 25."},
	{11, PayToBank, 75, "Speeding fine. Pay 75."},
	{12, ReceiveFromEach, 50, "Grand opening of your store. Collect 50 from every player."},
	{13, ReceiveFromBank, 150, "Your building loan matures. Collect 150."},
	{14, PayToBank, 40, "Pay an insurance premium of 40."},
	{15, CardGoToJail, 0, "Caught cheating at cards. Go to jail."},
	{16, ReceiveFromBank, 75, "Income tax refund. Collect 75."},
	{17, JailFree, 0, "Get out of jail free. Keep this card until needed."},
	{18, PayToBank, 125, "Street repairs. Pay 125."},
	{19, ReceiveFromBank, 20, "You sold some old furniture. Collect 20."},
	{20, PayToBank, 60, "Parking fine. Pay 60."},
	{21, ReceiveFromEach, 10, "Charity gala in your honor. Collect 10 from every player."},
	{22, ReceiveFromBank, 125, "Inheritance from a distant relative. Collect 125."},
	{23, PayToBank, 30, "Library fine. Pay 30."},
	{24, ReceiveFromBank, 60, "Sale of stock. Collect 60."},
	{25, PayToBank, 200, "Major plumbing repairs. Pay 200."},
	{26, ReceiveFromBank, 40, "Cashback from the grocer. Collect 40."},
	{27, PayToBank, 90, "Your car broke down. Pay 90."},
	{28, ReceiveFromBank, 175, "Second prize in a beauty contest. Collect 175."},
	{29, PayToBank, 15, "Postage due. Pay 15."},
	{30, ReceiveFromBank, 10, "Found a bill on the street. Collect 10."},
}
