package impl

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"go.dedis.ch/arp/protocol"
	"go.dedis.ch/arp/types"
	"golang.org/x/xerrors"
)

// initialises ledger
func newLedger() *ledger {
	return &ledger{
		transactions: make(map[string]*types.Transaction),
		attestations: make([]types.Attestation, 0),
	}
}

type ledger struct {
	sync.RWMutex
	transactions map[string]*types.Transaction
	attestations []types.Attestation
}

// records the transaction, returns false if its hash is already taken
func (l *ledger) add(tx types.Transaction) bool {
	l.Lock()
	defer l.Unlock()

	_, inTable := l.transactions[tx.Hash]
	if inTable {
		return false
	}
	l.transactions[tx.Hash] = &tx
	return true
}

// returns a copy of the transaction with given hash
func (l *ledger) get(hash string) (types.Transaction, bool) {
	l.RLock()
	defer l.RUnlock()

	tx, inTable := l.transactions[hash]
	if !inTable {
		return types.Transaction{}, false
	}
	return *tx, true
}

// marks the transaction completed and records the attestation. Returns false
// if the transaction is no longer pending.
func (l *ledger) complete(att types.Attestation, at time.Time) bool {
	l.Lock()
	defer l.Unlock()

	tx, inTable := l.transactions[att.TxHash]
	if !inTable || !tx.IsPending() {
		return false
	}

	tx.Status = types.TxCompleted
	tx.CompletedAt = at
	l.attestations = append(l.attestations, att)
	return true
}

func (l *ledger) getAttestations() []types.Attestation {
	l.RLock()
	defer l.RUnlock()

	res := make([]types.Attestation, len(l.attestations))
	copy(res, l.attestations)
	return res
}

// implements protocol.Ledger
func (n *node) SubmitTransaction(from, to string, amount float64) (types.Transaction, error) {
	const op = "SubmitTransaction"

	if !isAmount(amount) {
		return types.Transaction{}, protocol.Errorf(protocol.InvalidArgument, op, "", "invalid amount %v", amount)
	}
	if from == to {
		return types.Transaction{}, protocol.Errorf(protocol.InvalidArgument, op, from, "sender and receiver are the same agent")
	}

	sender, ok := n.agents.get(from)
	if !ok {
		return types.Transaction{}, protocol.NewError(protocol.NotFound, op, from)
	}
	receiver, ok := n.agents.get(to)
	if !ok {
		return types.Transaction{}, protocol.NewError(protocol.NotFound, op, to)
	}

	tx := types.Transaction{
		Hash:      newTxHash(),
		From:      from,
		To:        to,
		Amount:    amount,
		Status:    types.TxPending,
		Timestamp: n.now(),
	}

	unlock := lockPair(sender, receiver)

	if !n.ledger.add(tx) {
		unlock()
		log.Error().Msgf("generated transaction hash %s is already recorded", tx.Hash)
		return types.Transaction{}, xerrors.Errorf("%s: %w", op, ErrCollision)
	}

	// participation counts regardless of the attestation outcome
	sender.agent.TransactionCount++
	receiver.agent.TransactionCount++

	evts := []types.Event{types.TransactionSubmittedEvent{Transaction: tx}}
	evts = append(evts, n.recompute(&sender.agent)...)
	evts = append(evts, n.recompute(&receiver.agent)...)

	unlock()

	n.emit(evts...)
	return tx, nil
}

// implements protocol.Ledger
func (n *node) Attest(txHash string, rating int, feedback string) (types.Attestation, error) {
	return n.attest("Attest", txHash, rating, feedback, types.AttestCompleted)
}

// implements protocol.Ledger
func (n *node) AttestWithType(txHash string, rating int, feedback string, tp types.AttestationType) (types.Attestation, error) {
	return n.attest("AttestWithType", txHash, rating, feedback, tp)
}

// The rating goes to the transaction's sender, the party that attests.
func (n *node) attest(op, txHash string, rating int, feedback string, tp types.AttestationType) (types.Attestation, error) {
	if rating < n.conf.MinRating || rating > n.conf.MaxRating {
		return types.Attestation{}, protocol.Errorf(protocol.InvalidArgument, op, txHash,
			"rating %d out of [%d, %d]", rating, n.conf.MinRating, n.conf.MaxRating)
	}
	tp, ok := types.ParseAttestationType(string(tp))
	if !ok {
		return types.Attestation{}, protocol.Errorf(protocol.InvalidArgument, op, txHash, "unknown attestation type")
	}

	tx, ok := n.ledger.get(txHash)
	if !ok {
		return types.Attestation{}, protocol.NewError(protocol.NotFound, op, txHash)
	}

	e, ok := n.agents.get(tx.From)
	if !ok {
		return types.Attestation{}, protocol.NewError(protocol.NotFound, op, tx.From)
	}

	now := n.now()
	att := types.Attestation{
		TxHash:    tx.Hash,
		From:      tx.From,
		To:        tx.To,
		Rating:    rating,
		Feedback:  feedback,
		Type:      tp,
		Timestamp: now,
	}

	e.Lock()

	if !n.ledger.complete(att, now) {
		e.Unlock()
		return types.Attestation{}, protocol.NewError(protocol.AlreadyAttested, op, txHash)
	}

	e.agent.Ratings = append(e.agent.Ratings, types.Rating{
		Value:     float64(rating),
		Feedback:  feedback,
		Reference: tx.Hash,
		Kind:      types.AttestationRating,
		Timestamp: now,
	})

	evts := []types.Event{types.AttestedEvent{Attestation: att}}
	evts = append(evts, n.recompute(&e.agent)...)

	e.Unlock()

	n.emit(evts...)
	return att, nil
}

// implements protocol.Ledger
func (n *node) GetTransaction(txHash string) (types.Transaction, error) {
	tx, ok := n.ledger.get(txHash)
	if !ok {
		return types.Transaction{}, protocol.NewError(protocol.NotFound, "GetTransaction", txHash)
	}
	return tx, nil
}

// implements protocol.Ledger
func (n *node) Attestations() []types.Attestation {
	return n.ledger.getAttestations()
}
