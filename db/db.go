package db

import (
	"strconv"

	"github.com/mkofman/pitchmatch/constants"
	"github.com/mkofman/pitchmatch/model"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

func newClient() *dynamodb.DynamoDB {
	endpoint := "http://localhost:8000"
	session, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		panic("Could not create a new DynamoDB session because " + err.Error())
	}
	return dynamodb.New(session)
}

func GetSessionMetadatas(sessionIds []string) map[string]model.SessionMetadata {
	if len(sessionIds) > 10 {
		panic("Not supposed to pass in more than 10 session ids!")
	}

	res := make(map[string]model.SessionMetadata)

	if len(sessionIds) == 0 {
		return res
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, id := range sessionIds {
		key := make(map[string]*dynamodb.AttributeValue)
		key["PK"] = &dynamodb.AttributeValue{
			S: aws.String(id),
		}
		keys = append(keys, key)
	}

	client := newClient()
	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			constants.SessionTable: {Keys: keys},
		},
	}
	dbres, err := client.BatchGetItem(input)
	if err != nil {
		panic("Error from DynamoDB: " + err.Error())
	}

	for _, v := range dbres.Responses[constants.SessionTable] {
		var s model.SessionMetadata
		if v["NumMatches"].N != nil {
			num, _ := strconv.ParseUint(*v["NumMatches"].N, 10, 32)
			s.NumMatches = uint(num)
		}
		s.Instrument = *v["Instrument"].S
		s.Transposition = *v["Transposition"].S
		res[*v["PK"].S] = s
	}

	return res
}

func PutSessionMetadata(sessionId string, metadata model.SessionMetadata) {
	client := newClient()
	numMatches := strconv.FormatUint(uint64(metadata.NumMatches), 10)
	input := &dynamodb.PutItemInput{
		TableName: aws.String(constants.SessionTable),
		Item: map[string]*dynamodb.AttributeValue{
			"PK":            {S: aws.String(sessionId)},
			"Instrument":    {S: aws.String(metadata.Instrument)},
			"Transposition": {S: aws.String(metadata.Transposition)},
			"NumMatches":    {N: aws.String(numMatches)},
		},
	}
	_, err := client.PutItem(input)
	if err != nil {
		panic("Error from DynamoDB: " + err.Error())
	}
}
