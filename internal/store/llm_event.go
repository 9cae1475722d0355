package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/jmsone/JeopardyTrainer-sub000/ent"
	"github.com/jmsone/JeopardyTrainer-sub000/ent/llmrequestevent"
)

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save llm request event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentLLMEvents(ctx context.Context, limit int) ([]LLMEventRecord, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}

	records := make([]LLMEventRecord, 0, len(events))
	for _, e := range events {
		records = append(records, LLMEventRecord{
			Sequence:     e.Sequence,
			Timestamp:    e.Timestamp,
			Provider:     e.Provider,
			Model:        e.Model,
			Purpose:      e.Purpose,
			InputTokens:  e.InputTokens,
			OutputTokens: e.OutputTokens,
			LatencyMs:    e.LatencyMs,
			Success:      e.Success,
			ErrorMessage: e.ErrorMessage,
		})
	}
	return records, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error) {
	events, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm usage: %w", err)
	}
	return aggregateUsage(events, func(e *ent.LLMRequestEvent) string { return e.Purpose }, func(s *LLMUsageStat, key string) {
		s.Purpose = key
	}), nil
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMUsageStat, error) {
	events, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm usage: %w", err)
	}
	return aggregateUsage(events, func(e *ent.LLMRequestEvent) string { return e.Model }, func(s *LLMUsageStat, key string) {
		s.Model = key
	}), nil
}

func aggregateUsage(events []*ent.LLMRequestEvent, keyOf func(*ent.LLMRequestEvent) string, setKey func(*LLMUsageStat, string)) []LLMUsageStat {
	type acc struct {
		stat       LLMUsageStat
		latencySum int64
	}
	byKey := make(map[string]*acc)
	for _, e := range events {
		key := keyOf(e)
		a, ok := byKey[key]
		if !ok {
			a = &acc{}
			setKey(&a.stat, key)
			byKey[key] = a
		}
		a.stat.Calls++
		a.stat.InputTokens += e.InputTokens
		a.stat.OutputTokens += e.OutputTokens
		a.latencySum += e.LatencyMs
	}

	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	stats := make([]LLMUsageStat, 0, len(keys))
	for _, k := range keys {
		a := byKey[k]
		if a.stat.Calls > 0 {
			a.stat.AvgLatencyMs = a.latencySum / int64(a.stat.Calls)
		}
		stats = append(stats, a.stat)
	}
	return stats
}
