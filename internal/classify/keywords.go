package classify

// DefaultKeywords are the built-in matching tables for Pizza Hut sale
// coverage. Tiers are ordered: a "definitive agreement" headline must land
// high even though it would also match medium deal-process words.
func DefaultKeywords() Keywords {
	return Keywords{
		High: []string{
			// Deal announcements
			"acquires pizza hut", "to buy pizza hut", "pizza hut sold", "pizza hut deal",
			"pizza hut acquisition", "bid for pizza hut", "offer for pizza hut",
			"pizza hut buyer", "yum sells pizza hut", "pizza hut sale complete",
			// Deal process (late stage)
			"definitive agreement", "binding offer", "exclusivity",
			"regulatory approval", "antitrust clearance", "expected to close",
			"shareholder vote", "deal closing",
		},
		Medium: []string{
			// Deal process (early/mid stage)
			"pizza hut strategic", "pizza hut review", "pizza hut talks",
			"due diligence", "management presentation", "data room",
			"preliminary interest", "indicative bid", "non-binding",
			// Buyer activity
			"roark pizza", "apollo pizza hut", "inspire brands pizza",
			"restaurant brands pizza", "pizza hut interested", "pizza hut bidder",
			"flynn pizza hut", "blackstone pizza",
			// Financing signals
			"lbo financing", "debt financing", "committed financing",
			// Franchisee signals
			"pizza hut franchisee", "franchisee meeting", "town hall",
			// Valuation
			"pizza hut valuation", "ebitda multiple", "enterprise value",
			// Executive movements
			"former pizza hut", "ex-pizza hut", "leaves pizza hut", "left pizza hut",
			"pizza hut executive", "pizza hut ceo", "pizza hut cmo", "pizza hut cfo",
			"pizza hut president", "departs pizza hut", "exits pizza hut",
			"pizza hut leadership", "pizza hut management change",
		},
		Low: []string{
			// Geographic/structural
			"pizza hut international", "master franchise", "carve-out",
			"pizza hut china", "pizza hut australia",
			// Distress signals
			"pizza hut closures", "pizza hut bankruptcy", "restructuring",
			// Industry context
			"pizza industry", "qsr m&a", "restaurant consolidation",
			// General executive news
			"pizza hut appoints", "pizza hut names", "pizza hut hires",
			"joins pizza hut", "pizza hut promotes",
		},

		Brand:       "pizza hut",
		DealContext: []string{"sale", "buy", "acqui", "deal", "bid", "offer"},

		Positive: []string{
			// Active interest
			"confirms", "in talks", "interested", "bidding", "considering",
			"frontrunner", "leading", "close to", "nearing", "pursuing",
			// Deal progress
			"due diligence", "data room", "exclusivity", "binding offer",
			"definitive agreement", "finalizing", "expected to close",
			// Financing
			"secured financing", "committed financing", "raises capital",
		},
		Negative: []string{
			// Withdrawal
			"denies", "pulls out", "withdraws", "not interested", "unlikely",
			"rejects", "walks away", "falls through", "collapses",
			// Deal problems
			"talks stall", "negotiations break", "regulatory concerns",
			"antitrust issues", "financing falls", "price gap",
		},
	}
}
