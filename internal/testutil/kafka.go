//go:build integration

package testutil

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

var reTopicUnsafe = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// UniqueName — имя топика или группы, уникальное для прогона теста.
// Недопустимые для Kafka символы (например "/" из t.Name()) заменяются на "-".
func UniqueName(base string) string {
	base = strings.Trim(reTopicUnsafe.ReplaceAllString(base, "-"), "-")
	return base + "-" + strconv.FormatInt(time.Now().UnixNano(), 36)
}

// EnsureTopics — создаёт топики с одной партицией и ждёт их в метаданных.
// Уже существующий топик ошибкой не считается.
func EnsureTopics(ctx context.Context, brokers []string, topics ...string) error {
	client := &kafka.Client{Addr: kafka.TCP(bootstrap(brokers)), Timeout: 10 * time.Second}

	req := &kafka.CreateTopicsRequest{}
	for _, topic := range topics {
		req.Topics = append(req.Topics, kafka.TopicConfig{Topic: topic, NumPartitions: 1, ReplicationFactor: 1})
	}
	resp, err := client.CreateTopics(ctx, req)
	if err != nil {
		return fmt.Errorf("create topics: %w", err)
	}
	for topic, topicErr := range resp.Errors {
		if topicErr != nil && !errors.Is(topicErr, kafka.TopicAlreadyExists) {
			return fmt.Errorf("create topic %q: %w", topic, topicErr)
		}
	}

	for _, topic := range topics {
		if err := waitTopic(ctx, client, topic); err != nil {
			return err
		}
	}
	return nil
}

// WriteMessages — синхронная запись с подтверждением всех реплик.
func WriteMessages(ctx context.Context, brokers []string, topic string, msgs ...kafka.Message) error {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		RequiredAcks: kafka.RequireAll,
		Balancer:     &kafka.Hash{},
	}
	defer w.Close()
	return w.WriteMessages(ctx, msgs...)
}

// ReadOne — первое сообщение партиции 0, без consumer group.
func ReadOne(ctx context.Context, brokers []string, topic string) (kafka.Message, error) {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:   brokers,
		Topic:     topic,
		Partition: 0,
		MinBytes:  1,
		MaxBytes:  1 << 20,
	})
	defer r.Close()
	return r.ReadMessage(ctx)
}

// bootstrap — первый брокер без схемы: testcontainers может отдать "PLAINTEXT://host:port".
func bootstrap(brokers []string) string {
	if len(brokers) == 0 {
		return ""
	}
	addr := strings.TrimSpace(brokers[0])
	if i := strings.Index(addr, "://"); i >= 0 {
		addr = addr[i+3:]
	}
	return addr
}

func waitTopic(ctx context.Context, client *kafka.Client, topic string) error {
	tick := time.NewTicker(200 * time.Millisecond)
	defer tick.Stop()

	var lastErr error
	for {
		meta, err := client.Metadata(ctx, &kafka.MetadataRequest{Topics: []string{topic}})
		switch {
		case err != nil:
			lastErr = err
		case len(meta.Topics) == 1 && meta.Topics[0].Error == nil && len(meta.Topics[0].Partitions) > 0:
			return nil
		case len(meta.Topics) == 1:
			lastErr = meta.Topics[0].Error
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("topic %q not ready: %w", topic, errors.Join(ctx.Err(), lastErr))
		case <-tick.C:
		}
	}
}
