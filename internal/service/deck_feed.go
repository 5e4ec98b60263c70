package service

import (
	"sync"

	"studystack/internal/model"

	"github.com/google/uuid"
)

// DeckFeed はオーナーごとの購読者へデッキ一覧のスナップショットを配信します。
//
// 購読者ごとに未読は最大1件。新しいスナップショットが未読のものを置き換えるため、
// 遅い購読者は常に最新の一覧だけを受け取り、配信側をブロックしない。
//
// スナップショットには一覧を読む前に Stamp で取った番号を付ける。番号は単調増加で、
// 購読者がすでに受け取った番号 (購読開始時点を含む) 以下のものは古い一覧として捨てる。
type DeckFeed struct {
	mu   sync.Mutex
	seq  uint64
	subs map[uuid.UUID]map[*feedSubscription]struct{}
}

type feedSubscription struct {
	ch   chan []model.DeckSummary
	last uint64 // 最後に渡したスナップショットの番号
}

func NewDeckFeed() *DeckFeed {
	return &DeckFeed{subs: make(map[uuid.UUID]map[*feedSubscription]struct{})}
}

// Stamp は次のスナップショット番号を発行します。一覧を読む前に呼ぶこと。
func (f *DeckFeed) Stamp() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	return f.seq
}

// Subscribe は ownerID の購読者を登録します。
// 登録より前に発行された番号のスナップショットは届かないので、呼び出し側は登録後に
// 現在の一覧を読むこと。cancel は購読を解除してチャネルを閉じる (何度呼んでもよい)。
func (f *DeckFeed) Subscribe(ownerID uuid.UUID) (<-chan []model.DeckSummary, func()) {
	sub := &feedSubscription{ch: make(chan []model.DeckSummary, 1)}

	f.mu.Lock()
	f.seq++
	sub.last = f.seq
	set, ok := f.subs[ownerID]
	if !ok {
		set = make(map[*feedSubscription]struct{})
		f.subs[ownerID] = set
	}
	set[sub] = struct{}{}
	f.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			f.mu.Lock()
			defer f.mu.Unlock()
			if set, ok := f.subs[ownerID]; ok {
				delete(set, sub)
				if len(set) == 0 {
					delete(f.subs, ownerID)
				}
			}
			close(sub.ch)
		})
	}
	return sub.ch, cancel
}

// Publish は seq 番のスナップショットを ownerID の購読者に配信します。
// その購読者がすでにより新しい番号を受け取っている場合は何もしない。
func (f *DeckFeed) Publish(ownerID uuid.UUID, seq uint64, decks []model.DeckSummary) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for sub := range f.subs[ownerID] {
		if seq <= sub.last {
			continue
		}
		sub.last = seq
		// 未読のスナップショットは捨てて最新に置き換える
		select {
		case <-sub.ch:
		default:
		}
		sub.ch <- decks
	}
}

// HasSubscribers は ownerID の購読者がいるかを返します。
func (f *DeckFeed) HasSubscribers(ownerID uuid.UUID) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs[ownerID]) > 0
}
