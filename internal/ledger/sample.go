package ledger

import "time"

// Sample returns a fixed set of demo transactions, newest first.
func Sample() []Transaction {
	base := time.Date(2024, time.March, 14, 9, 30, 0, 0, time.UTC)
	at := func(hours int) time.Time { return base.Add(-time.Duration(hours) * time.Hour) }

	return []Transaction{
		{ID: "9f1c2a7e-5b7d-4c0e-8a61-0c3f5e2d9b11", Time: at(0), Direction: Incoming, Amount: 2_500_000, Confirmations: 0, Status: StatusPending, Memo: "Invoice #1042"},
		{ID: "1b7e44d0-3f2a-4e7b-9d33-6a8c2f1e0a52", Time: at(3), Direction: Outgoing, Amount: 1_200_000, Fee: 1_420, Confirmations: 2, Status: StatusConfirmed, Memo: "Hardware wallet"},
		{ID: "c4d8e2f1-7a6b-4b3c-8e19-2d5f7a9c3e64", Time: at(26), Direction: Incoming, Amount: 15_000_000, Confirmations: 38, Status: StatusConfirmed, Memo: "Exchange withdrawal"},
		{ID: "e2a9b6c3-1d4f-4a8e-b7c2-9f3e6d1a5b78", Time: at(30), Direction: Outgoing, Amount: 450_000, Fee: 980, Confirmations: 41, Status: StatusConfirmed, Memo: "Coffee subscription"},
		{ID: "5d3f8a1b-9c2e-4f6d-a4b7-1e8c3d6f2a90", Time: at(52), Direction: Outgoing, Amount: 3_000_000, Fee: 2_210, Confirmations: 0, Status: StatusFailed, Memo: "Fee too low, replaced"},
		{ID: "7a6c1e9d-2b5f-4d3a-9e8b-4c7f1a2d6e03", Time: at(53), Direction: Outgoing, Amount: 3_000_000, Fee: 5_600, Confirmations: 77, Status: StatusConfirmed, Memo: "Rent share"},
		{ID: "b8e3d5a2-6f1c-4e9b-8d7a-3f2c5e1b9d15", Time: at(98), Direction: Incoming, Amount: 820_000, Confirmations: 140, Status: StatusConfirmed, Memo: "Refund"},
		{ID: "0f9a4c6e-8d2b-4a1f-b3e5-7c6d9a8f1e27", Time: at(170), Direction: Incoming, Amount: 50_000_000, Confirmations: 512, Status: StatusConfirmed, Memo: "Savings transfer"},
		{ID: "d6b2f8e4-4a9c-4c5d-9f1e-8b3a7d2c6f39", Time: at(240), Direction: Outgoing, Amount: 75_000, Fee: 310, Confirmations: 901, Status: StatusConfirmed, Memo: "Tip"},
		{ID: "3e7d1a5c-b9f2-4e8a-a6c4-5d1f8e3b7a41", Time: at(400), Direction: Incoming, Amount: 1_000_000, Confirmations: 1_620, Status: StatusConfirmed, Memo: "Birthday gift from a friend who insisted on paying in sats"},
	}
}
