package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const DatabaseName = "EncuestasDB"

var (
	client     *mongo.Client
	once       sync.Once // evita conectar dos veces
	connectErr error

	UserCollection     *mongo.Collection
	SurveyCollection   *mongo.Collection
	QuestionCollection *mongo.Collection
	ResponseCollection *mongo.Collection
	AnswerCollection   *mongo.Collection
)

// ConnectMongoDB conecta con MongoDB una sola vez
func ConnectMongoDB() error {

	// Cargar variables de entorno desde .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("❌ MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	once.Do(func() {
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("❌ MongoDB ping failed:", connectErr)
			return
		}

		UserCollection = GetCollection(DatabaseName, "users")
		SurveyCollection = GetCollection(DatabaseName, "surveys")
		QuestionCollection = GetCollection(DatabaseName, "questions")
		ResponseCollection = GetCollection(DatabaseName, "responses")
		AnswerCollection = GetCollection(DatabaseName, "answers")

		log.Println("✅ MongoDB connected successfully")
	})

	return connectErr
}

// GetCollection devuelve una colección de MongoDB
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}
