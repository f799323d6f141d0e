//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/eco-travel-service/internal/domain"
)

func main() {
	redisAddr := flag.String("redis", "localhost:6380", "Redis address for streams")
	origin := flag.String("origin", "Delhi", "origin city")
	destination := flag.String("destination", "Jaipur", "destination")
	travelers := flag.Int("travelers", 2, "number of travelers")
	days := flag.Int("days", 5, "trip length in days")
	transport := flag.String("transport", "Flight", "transport mode")
	stay := flag.String("stay", "Standard Hotel (3-Star)", "accommodation")
	food := flag.String("food", "Standard Restaurants", "food option")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := domain.TripEvaluateEvent{
		RequestID:     uuid.New(),
		OriginCity:    *origin,
		Destination:   *destination,
		Travelers:     *travelers,
		Days:          *days,
		Transport:     *transport,
		Accommodation: *stay,
		Food:          *food,
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	// запоминаем хвост стрима результатов до публикации
	lastID := "$"
	if msgs, err := client.XRevRangeN(ctx, domain.StreamTripEvaluated, "+", "-", 1).Result(); err == nil && len(msgs) > 0 {
		lastID = msgs[0].ID
	}

	msgID, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: domain.StreamTripEvaluate,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published\n")
	fmt.Printf("   Stream: %s\n", domain.StreamTripEvaluate)
	fmt.Printf("   Message ID: %s\n", msgID)
	fmt.Printf("   Request ID: %s\n", event.RequestID)
	fmt.Printf("   Trip: %s -> %s, %d travelers, %d days\n", event.OriginCity, event.Destination, event.Travelers, event.Days)

	fmt.Printf("\nWaiting for response in %s...\n", domain.StreamTripEvaluated)

	deadline := time.Now().Add(30 * time.Second)
	for time.Now().Before(deadline) {
		results, err := client.XRead(ctx, &redis.XReadArgs{
			Streams: []string{domain.StreamTripEvaluated, lastID},
			Count:   10,
			Block:   time.Second,
		}).Result()
		if err != nil && err != redis.Nil {
			log.Printf("read failed: %v", err)
			time.Sleep(time.Second)
			continue
		}

		for _, stream := range results {
			for _, msg := range stream.Messages {
				lastID = msg.ID

				dataStr, ok := msg.Values["data"].(string)
				if !ok {
					continue
				}

				var response domain.TripEvaluatedEvent
				if err := json.Unmarshal([]byte(dataStr), &response); err != nil {
					continue
				}
				if response.RequestID != event.RequestID {
					continue
				}

				fmt.Printf("\nResponse received\n")
				pretty, _ := json.MarshalIndent(response, "", "  ")
				fmt.Printf("%s\n", pretty)
				return
			}
		}
	}

	fmt.Println("Timeout waiting for response")
}
