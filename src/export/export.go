package export

import (
	"context"
	"fmt"
	"io"

	"github.com/BielosX/wombat/pokedex/src/csv"
	"github.com/BielosX/wombat/pokedex/src/helper"
	"github.com/BielosX/wombat/pokedex/src/parquet"
	"github.com/BielosX/wombat/pokedex/src/pokeapi"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ScheduleRequest struct {
	PageSize    int32 `json:"pageSize"`
	StartOffset int32 `json:"startOffset"`
	PageCount   int32 `json:"pageCount"`
}

type Schedule struct {
	Limit  int32 `json:"limit"`
	Offset int32 `json:"offset"`
}

type ScraperResult struct {
	RunId           string `json:"runId"`
	Rows            int    `json:"rows"`
	ParquetFileName string `json:"parquetFileName"`
	CsvFileName     string `json:"csvFileName"`
}

// Uploader is satisfied by s3.Client.
type Uploader interface {
	PutFile(ctx context.Context, reader io.Reader, bucket, key, contentType string, metadata map[string]string) error
}

// ScheduleTasks splits a range into PageCount consecutive pages of PageSize.
func ScheduleTasks(request ScheduleRequest) []Schedule {
	if request.PageCount <= 0 {
		return []Schedule{}
	}
	result := make([]Schedule, 0, request.PageCount)
	for i := int32(0); i < request.PageCount; i++ {
		result = append(result, Schedule{
			Limit:  request.PageSize,
			Offset: request.StartOffset + i*request.PageSize,
		})
	}
	return result
}

type Exporter struct {
	client   *pokeapi.Client
	uploader Uploader
	bucket   string
	sugar    *zap.SugaredLogger
	newRunId func() string
}

func NewExporter(client *pokeapi.Client, uploader Uploader, bucket string, sugar *zap.SugaredLogger) *Exporter {
	if sugar == nil {
		sugar = zap.NewNop().Sugar()
	}
	return &Exporter{
		client:   client,
		uploader: uploader,
		bucket:   bucket,
		sugar:    sugar,
		newRunId: func() string { return uuid.NewString() },
	}
}

// Run exports one page. An empty page uploads nothing and returns a nil result.
func (e *Exporter) Run(ctx context.Context, request Schedule) (*ScraperResult, error) {
	runId := e.newRunId()
	sugar := e.sugar.With("runId", runId)
	sugar.Infof("Starting Scraping, limit: %d offset: %d", request.Limit, request.Offset)

	pokemons, err := e.client.ListPokemonDetails(ctx, request.Limit, request.Offset)
	if err != nil {
		return nil, fmt.Errorf("list pokemon details: %w", err)
	}
	resultsCount := int32(len(pokemons))
	sugar.Infof("Got %d Pokemon results", resultsCount)
	if resultsCount == 0 {
		return nil, nil
	}

	pokemonWriter, err := parquet.NewPokemonWriter()
	if err != nil {
		sugar.Errorf("Failed to create Pokemon Parquet Writer: %s", err)
		return nil, err
	}
	csvWriter := csv.NewPokemonWriter()
	if err := csvWriter.WriteHeader(); err != nil {
		return nil, err
	}
	for _, pokemon := range pokemons {
		generation, err := e.client.GetPokemonGeneration(ctx, pokemon.Species)
		if err != nil {
			sugar.Errorf("Failed to get Pokemon Generation: %s", err)
			return nil, fmt.Errorf("generation of %s: %w", pokemon.Name, err)
		}
		entries, err := parquet.ToPokemon(helper.ToDetail(&pokemon), generation)
		if err != nil {
			sugar.Errorf("Failed to parse Pokemon response: %s", err)
			return nil, err
		}
		for _, entry := range entries {
			sugar.Debugf("Writing Pokemon %s (%s)", entry.Name, entry.Type)
			if err := pokemonWriter.WritePokemon(&entry); err != nil {
				sugar.Errorf("Error writing Pokemon to Parquet: %s", err)
				return nil, err
			}
			if err := csvWriter.Write(entry); err != nil {
				sugar.Errorf("Error writing Pokemon to CSV: %s", err)
				return nil, err
			}
		}
	}
	if err := pokemonWriter.Finish(); err != nil {
		return nil, err
	}
	if err := csvWriter.Finish(); err != nil {
		return nil, err
	}

	firstId := request.Offset + 1
	parquetFileName := fmt.Sprintf("pokemons/%d_%d.parquet", firstId, firstId+resultsCount-1)
	csvFileName := fmt.Sprintf("pokemons/%d_%d.csv", firstId, firstId+resultsCount-1)
	metadata := map[string]string{"run-id": runId}

	sugar.Infof("Sending parquet file of size %d to S3", pokemonWriter.Size())
	if err := e.uploader.PutFile(ctx, pokemonWriter.BufferReader(), e.bucket, parquetFileName, "application/vnd.apache.parquet", metadata); err != nil {
		return nil, fmt.Errorf("upload %s: %w", parquetFileName, err)
	}
	sugar.Infof("Sending CSV file of size %d to S3", csvWriter.Size())
	if err := e.uploader.PutFile(ctx, csvWriter.BufferReader(), e.bucket, csvFileName, "text/csv", metadata); err != nil {
		return nil, fmt.Errorf("upload %s: %w", csvFileName, err)
	}
	return &ScraperResult{
		RunId:           runId,
		Rows:            pokemonWriter.Rows(),
		ParquetFileName: parquetFileName,
		CsvFileName:     csvFileName,
	}, nil
}
