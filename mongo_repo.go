package persona

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoPersonRepository struct {
	collection *mongo.Collection
	counters   *mongo.Collection
}

type dbPerson struct {
	ID           ID     `bson:"_id"`
	Login        string `bson:"login"`
	PasswordHash string `bson:"passwordHash"`
}

// NewMongoPersonRepository wires the persons collection and enforces
// login uniqueness at the store layer.
func NewMongoPersonRepository(db *mongo.Database) (Repository, error) {
	c := db.Collection("persons")
	_, err := c.Indexes().CreateOne(context.TODO(), mongo.IndexModel{
		Keys:    bson.M{"login": 1},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, err
	}
	return &mongoPersonRepository{collection: c, counters: db.Collection("counters")}, nil
}

func (m *mongoPersonRepository) FindByID(id ID) (*Person, error) {
	return m.findPersonBy("_id", int64(id))
}

func (m *mongoPersonRepository) FindByLogin(login string) (*Person, error) {
	return m.findPersonBy("login", login)
}

func (m *mongoPersonRepository) findPersonBy(key string, val interface{}) (*Person, error) {
	var dbp dbPerson
	sr := m.collection.FindOne(context.TODO(), bson.M{key: val})

	if sr.Err() == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}

	if err := sr.Decode(&dbp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}

	p := personFromDBPerson(dbp)
	return &p, nil
}

func (m *mongoPersonRepository) FindAll() ([]Person, error) {
	cur, err := m.collection.Find(context.TODO(), bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(context.TODO())

	persons := []Person{}
	for cur.Next(context.TODO()) {
		var dbp dbPerson
		if err := cur.Decode(&dbp); err != nil {
			return nil, err
		}
		persons = append(persons, personFromDBPerson(dbp))
	}
	return persons, cur.Err()
}

func (m *mongoPersonRepository) Store(p *Person) error {
	id, err := m.nextID()
	if err != nil {
		return err
	}

	dbp := dbPersonFromPerson(p)
	dbp.ID = id
	if _, err := m.collection.InsertOne(context.TODO(), &dbp); err != nil {
		return err
	}

	p.ID = id
	return nil
}

func (m *mongoPersonRepository) Update(p *Person) error {
	dbp := dbPersonFromPerson(p)
	res, err := m.collection.ReplaceOne(context.TODO(), bson.M{"_id": int64(dbp.ID)}, dbp)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *mongoPersonRepository) Delete(id ID) error {
	res, err := m.collection.DeleteOne(context.TODO(), bson.M{"_id": int64(id)})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// nextID allocates sequential integer ids from a counter document, since
// mongo has no auto-increment of its own.
func (m *mongoPersonRepository) nextID() (ID, error) {
	sr := m.counters.FindOneAndUpdate(
		context.TODO(),
		bson.M{"_id": "personid"},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)

	var doc struct {
		Seq int64 `bson:"seq"`
	}
	if err := sr.Decode(&doc); err != nil {
		return 0, err
	}
	return ID(doc.Seq), nil
}

func dbPersonFromPerson(p *Person) dbPerson {
	return dbPerson{p.ID, p.Login, p.PasswordHash}
}

func personFromDBPerson(dbp dbPerson) Person {
	return Person{dbp.ID, dbp.Login, dbp.PasswordHash}
}
