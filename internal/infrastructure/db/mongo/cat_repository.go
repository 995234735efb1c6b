package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/catatlas/cat-registry/internal/core/domain"
	"github.com/catatlas/cat-registry/internal/core/ports"
)

const catsCollection = "cats"

// CatRepository implements ports.CatRepository on MongoDB. Locations are
// stored as GeoJSON points under a 2dsphere index so the area query can use
// $geoWithin, which treats ring boundaries as inclusive.
type CatRepository struct {
	coll *mongo.Collection
}

func NewCatRepository(db *mongo.Database) *CatRepository {
	return &CatRepository{coll: db.Collection(catsCollection)}
}

// geoPoint is the stored GeoJSON form; coordinates are [lng, lat].
type geoPoint struct {
	Type        string     `bson:"type"`
	Coordinates [2]float64 `bson:"coordinates"`
}

type mongoCat struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	CatName   string             `bson:"cat_name"`
	Weight    float64            `bson:"weight"`
	Filename  string             `bson:"filename"`
	Birthdate time.Time          `bson:"birthdate"`
	Location  geoPoint           `bson:"location"`
	Owner     primitive.ObjectID `bson:"owner"`
	CreatedAt time.Time          `bson:"created_at"`
	// OwnerDoc is populated by the $lookup stage on read paths.
	OwnerDoc []mongoUser `bson:"owner_doc,omitempty"`
}

// lookupOwner expands the owner reference against the users collection.
var lookupOwner = bson.D{{Key: "$lookup", Value: bson.M{
	"from":         usersCollection,
	"localField":   "owner",
	"foreignField": "_id",
	"as":           "owner_doc",
}}}

func (r *CatRepository) Insert(ctx context.Context, cat *domain.Cat) (*domain.Cat, error) {
	ownerID, err := primitive.ObjectIDFromHex(cat.OwnerID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	doc := mongoCat{
		CatName:   cat.CatName,
		Weight:    cat.Weight,
		Filename:  cat.Filename,
		Birthdate: cat.Birthdate.UTC(),
		Location:  toGeoPoint(cat.Location),
		Owner:     ownerID,
		CreatedAt: time.Now().UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert cat: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *CatRepository) FindByID(ctx context.Context, id string) (*domain.Cat, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCatNotFound
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"_id": oid}}},
		lookupOwner,
	}
	cats, err := r.aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	if len(cats) == 0 {
		return nil, domain.ErrCatNotFound
	}
	return &cats[0], nil
}

func (r *CatRepository) FindAll(ctx context.Context) ([]domain.Cat, error) {
	return r.aggregate(ctx, mongo.Pipeline{lookupOwner})
}

func (r *CatRepository) FindByOwner(ctx context.Context, ownerID string) ([]domain.Cat, error) {
	oid, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"owner": oid}}},
		lookupOwner,
	}
	return r.aggregate(ctx, pipeline)
}

// FindWithinPolygon runs the closed containment query. Owners are not
// expanded here; the area listing returns bare records.
func (r *CatRepository) FindWithinPolygon(ctx context.Context, polygon domain.Polygon) ([]domain.Cat, error) {
	filter := bson.M{"location": bson.M{"$geoWithin": bson.M{"$geometry": polygon}}}

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("area query: %w", err)
	}
	defer cur.Close(ctx)

	return decodeCats(ctx, cur)
}

func (r *CatRepository) Update(ctx context.Context, id string, fields ports.CatUpdateFields) (*domain.Cat, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCatNotFound
	}

	set := bson.M{}
	if fields.CatName != nil {
		set["cat_name"] = *fields.CatName
	}
	if fields.Weight != nil {
		set["weight"] = *fields.Weight
	}
	if fields.Birthdate != nil {
		set["birthdate"] = fields.Birthdate.UTC()
	}
	if fields.Filename != nil {
		set["filename"] = *fields.Filename
	}
	if fields.Location != nil {
		set["location"] = toGeoPoint(*fields.Location)
	}
	if fields.OwnerID != nil {
		ownerOID, err := primitive.ObjectIDFromHex(*fields.OwnerID)
		if err != nil {
			return nil, domain.ErrUserNotFound
		}
		set["owner"] = ownerOID
	}
	if len(set) == 0 {
		return r.findBare(ctx, oid)
	}

	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)

	var updated mongoCat
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCatNotFound
		}
		return nil, fmt.Errorf("update cat: %w", err)
	}
	return updated.toDomain(), nil
}

func (r *CatRepository) Delete(ctx context.Context, id string) (*domain.Cat, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCatNotFound
	}

	var deleted mongoCat
	err = r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&deleted)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCatNotFound
		}
		return nil, fmt.Errorf("delete cat: %w", err)
	}
	return deleted.toDomain(), nil
}

// EnsureIndexes creates the 2dsphere and owner indexes.
func (r *CatRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "location", Value: "2dsphere"}}},
		{Keys: bson.D{{Key: "owner", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *CatRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]domain.Cat, error) {
	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("find cats: %w", err)
	}
	defer cur.Close(ctx)

	return decodeCats(ctx, cur)
}

func (r *CatRepository) findBare(ctx context.Context, oid primitive.ObjectID) (*domain.Cat, error) {
	var mc mongoCat
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCatNotFound
		}
		return nil, fmt.Errorf("find cat: %w", err)
	}
	return mc.toDomain(), nil
}

func decodeCats(ctx context.Context, cur *mongo.Cursor) ([]domain.Cat, error) {
	cats := make([]domain.Cat, 0)
	for cur.Next(ctx) {
		var mc mongoCat
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode cat: %w", err)
		}
		cats = append(cats, *mc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate cats: %w", err)
	}
	return cats, nil
}

func toGeoPoint(p domain.Point) geoPoint {
	return geoPoint{Type: "Point", Coordinates: [2]float64{p.Lng, p.Lat}}
}

func (m *mongoCat) toDomain() *domain.Cat {
	cat := &domain.Cat{
		ID:        m.ID.Hex(),
		CatName:   m.CatName,
		Weight:    m.Weight,
		Filename:  m.Filename,
		Birthdate: m.Birthdate,
		Location:  domain.Point{Lat: m.Location.Coordinates[1], Lng: m.Location.Coordinates[0]},
		OwnerID:   m.Owner.Hex(),
		CreatedAt: m.CreatedAt,
	}
	if len(m.OwnerDoc) > 0 {
		owner := m.OwnerDoc[0]
		cat.Owner = domain.OwnerSummary{
			ID:       owner.ID.Hex(),
			UserName: owner.UserName,
			Email:    owner.Email,
		}
	}
	return cat
}
