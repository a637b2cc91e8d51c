// Copyright 2025 ogsware
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
)

//go:generate mockgen -source=./producer.go -package=evtmocks -destination=./mocks/producer.mock.go -typed RedemptionEventProducer
type RedemptionEventProducer interface {
	Produce(ctx context.Context, evt RedemptionEvent) error
}

type redemptionEventProducer struct {
	producer mq.Producer
}

func NewRedemptionEventProducer(q mq.MQ) (RedemptionEventProducer, error) {
	p, err := q.Producer(RedemptionEventName)
	if err != nil {
		return nil, err
	}
	return &redemptionEventProducer{
		p,
	}, nil
}

func (s *redemptionEventProducer) Produce(ctx context.Context, evt RedemptionEvent) error {
	data, err := json.Marshal(&evt)
	if err != nil {
		return fmt.Errorf("序列化失败: %w", err)
	}
	_, err = s.producer.Produce(ctx, &mq.Message{
		Key:   []byte(evt.Key),
		Value: data,
	})
	return err
}
