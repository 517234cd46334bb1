package kafka

type TransactionEvent struct {
	TxCode  string `json:"tx_code"`
	Action  string `json:"action"`
	Status  string `json:"status"`
	ActorID int64  `json:"actor_id"`
	BuyerID int64  `json:"buyer_id"`
	Seller  string `json:"seller"`
	Price   string `json:"price"`
}
