package store

import (
	"context"
	"fmt"

	"github.com/abhisek/lectio/ent"
	"github.com/abhisek/lectio/ent/llmrequestevent"
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
		return fmt.Errorf("save LLM request event: %w", err)
	}

	return nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error) {
	var rows []struct {
		Purpose     string  `json:"purpose"`
		Calls       int     `json:"calls"`
		TotalInput  int     `json:"total_input"`
		TotalOutput int     `json:"total_output"`
		MeanLatency float64 `json:"mean_latency"`
	}
	err := r.client.LLMRequestEvent.Query().
		GroupBy(llmrequestevent.FieldPurpose).
		Aggregate(
			ent.As(ent.Count(), "calls"),
			ent.As(ent.Sum(llmrequestevent.FieldInputTokens), "total_input"),
			ent.As(ent.Sum(llmrequestevent.FieldOutputTokens), "total_output"),
			ent.As(ent.Mean(llmrequestevent.FieldLatencyMs), "mean_latency"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate LLM usage by purpose: %w", err)
	}

	stats := make([]LLMUsageStat, len(rows))
	for i, row := range rows {
		stats[i] = LLMUsageStat{
			Purpose:      row.Purpose,
			Calls:        row.Calls,
			InputTokens:  row.TotalInput,
			OutputTokens: row.TotalOutput,
			AvgLatencyMs: int64(row.MeanLatency),
		}
	}
	return stats, nil
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error) {
	var rows []struct {
		Model       string `json:"model"`
		Calls       int    `json:"calls"`
		TotalInput  int    `json:"total_input"`
		TotalOutput int    `json:"total_output"`
	}
	err := r.client.LLMRequestEvent.Query().
		GroupBy(llmrequestevent.FieldModel).
		Aggregate(
			ent.As(ent.Count(), "calls"),
			ent.As(ent.Sum(llmrequestevent.FieldInputTokens), "total_input"),
			ent.As(ent.Sum(llmrequestevent.FieldOutputTokens), "total_output"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate LLM usage by model: %w", err)
	}

	usage := make([]LLMModelUsage, len(rows))
	for i, row := range rows {
		usage[i] = LLMModelUsage{
			Model:        row.Model,
			Calls:        row.Calls,
			InputTokens:  row.TotalInput,
			OutputTokens: row.TotalOutput,
		}
	}
	return usage, nil
}
