package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/vtm-builder/internal/cascade"
	"github.com/KirkDiggler/vtm-builder/internal/catalog"
	"github.com/KirkDiggler/vtm-builder/internal/config"
	"github.com/KirkDiggler/vtm-builder/internal/entities/vtm"
	"github.com/KirkDiggler/vtm-builder/internal/redis"
)

const (
	characterKeyPattern = "character:*"
	playerIndexPrefix   = "character:player:"
)

func main() {
	_ = godotenv.Load() // nolint:errcheck // the environment alone is enough

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	cat, err := catalog.New(&catalog.Config{Path: cfg.CatalogPath})
	if err != nil {
		log.Fatal("Failed to load catalog:", err)
	}

	client, err := redis.NewClient(cfg.RedisAddr, &redis.Options{
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		log.Fatal("Failed to create Redis client:", err)
	}
	ctx := context.Background()

	if err := redis.Ping(ctx, client, 5*time.Second); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", cfg.RedisAddr)
	fmt.Println("Scanning for corrupted character data...")

	iter := client.Scan(ctx, 0, characterKeyPattern, 0).Iterator()

	corrupted := make(map[string]string)
	var corruptedKeys []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		if strings.HasPrefix(key, playerIndexPrefix) {
			continue
		}
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var char vtm.Character
		if err := json.Unmarshal([]byte(data), &char); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}

		if problem := audit(cat, &char); problem != "" {
			fmt.Printf("✗ %s: %s\n", key, problem)
			corrupted[key] = char.PlayerID
			corruptedKeys = append(corruptedKeys, key)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d characters, found %d corrupted entries\n", checkedCount, len(corruptedKeys))

	if len(corruptedKeys) == 0 {
		fmt.Println("No corrupted data found!")
		return
	}

	fmt.Println("\nCorrupted keys:")
	for _, key := range corruptedKeys {
		fmt.Printf("  - %s\n", key)
	}

	fmt.Print("\nDo you want to DELETE these corrupted entries? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response) // nolint:errcheck // empty input aborts

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, key := range corruptedKeys {
		pipe := client.TxPipeline()
		pipe.Del(ctx, key)
		if playerID := corrupted[key]; playerID != "" {
			pipe.SRem(ctx, playerIndexPrefix+playerID, strings.TrimPrefix(key, "character:"))
		}
		if _, err := pipe.Exec(ctx); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
	fmt.Println("\nCleanup complete!")
}

// audit reports why a stored character no longer fits the catalog, or ""
func audit(cat catalog.Catalog, char *vtm.Character) string {
	if char.ID == "" {
		return "missing id"
	}
	if !vtm.IsClan(char.Clan) {
		return fmt.Sprintf("unknown clan %q", char.Clan)
	}
	if char.PredatorType.IsZero() {
		return ""
	}

	pt, err := cat.Get(char.PredatorType.Name)
	if err != nil {
		return fmt.Sprintf("unknown predator type %q", char.PredatorType.Name)
	}
	if !pt.AvailableTo(char.Clan) {
		return fmt.Sprintf("clan %s cannot take %s", char.Clan, pt.Name)
	}
	if err := cascade.Verify(char.PredatorType, pt); err != nil {
		return err.Error()
	}
	return ""
}
