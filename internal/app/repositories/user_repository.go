package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yigit/eduhub/internal/app/models"
	"github.com/yigit/eduhub/internal/pkg/dberrors"
	"github.com/yigit/eduhub/internal/pkg/logger"
)

// UserRepository handles the users collection
type UserRepository struct {
	users       collection[models.User]
	profiles    collection[models.UserProfile]
	courseUsers collection[models.CourseUser]
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		users:       newCollection[models.User](db, models.CollectionUsers),
		profiles:    newCollection[models.UserProfile](db, models.CollectionUsers),
		courseUsers: newCollection[models.CourseUser](db, models.CollectionUsers),
	}
}

// Create inserts a new user and fills its id and timestamps
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	user.CreatedAt = now()
	user.UpdatedAt = user.CreatedAt
	if user.Role == "" {
		user.Role = models.RoleStudent
	}

	if err := r.users.insert(ctx, user); err != nil {
		if dberrors.IsDuplicateKeyError(err, "uid", "email") {
			return ErrAlreadyExists
		}
		logger.Error().Err(err).Str("uid", user.UID).Msg("Error inserting user")
		return err
	}
	return nil
}

// FindAll returns every user
func (r *UserRepository) FindAll(ctx context.Context) ([]*models.User, error) {
	return r.users.find(ctx, bson.M{})
}

// FindByUID returns the user with the given external auth id
func (r *UserRepository) FindByUID(ctx context.Context, uid string) (*models.User, error) {
	return r.users.findOne(ctx, bson.M{"uid": uid})
}

// FindExisting returns a user that already owns uid or email
func (r *UserRepository) FindExisting(ctx context.Context, uid, email string) (*models.User, error) {
	return r.users.findOne(ctx, bson.M{"$or": bson.A{bson.M{"uid": uid}, bson.M{"email": email}}})
}

// FindProfile looks a user up by uid, narrowed by email when one is given
func (r *UserRepository) FindProfile(ctx context.Context, uid, email string) (*models.UserProfile, error) {
	filter := bson.M{"uid": uid}
	if email != "" {
		filter["email"] = email
	}
	projection := bson.M{"uid": 1, "name": 1, "email": 1, "phone": 1, "image": 1, "role": 1, "address": 1}
	return r.profiles.findOne(ctx, filter, options.FindOne().SetProjection(projection))
}

// FindByUIDs returns the public projection of the users whose uid is listed
func (r *UserRepository) FindByUIDs(ctx context.Context, uids []string) ([]*models.CourseUser, error) {
	projection := bson.M{"_id": 0, "uid": 1, "name": 1, "email": 1, "image": 1, "role": 1}
	return r.courseUsers.find(ctx, bson.M{"uid": bson.M{"$in": uids}}, options.Find().SetProjection(projection))
}

// UpdateProfile overwrites the editable profile fields of the user with uid
func (r *UserRepository) UpdateProfile(ctx context.Context, uid string, profile *models.User) (*models.User, error) {
	set := bson.M{
		"name":  profile.Name,
		"phone": profile.Phone,
		"image": profile.Image,
	}
	if profile.Address != nil {
		set["address"] = profile.Address
	}
	return r.users.updateOne(ctx, bson.M{"uid": uid}, bson.M{"$set": set})
}

// UpdateRole changes the role of the user with the given document id
func (r *UserRepository) UpdateRole(ctx context.Context, id string, role models.RoleType) (*models.User, error) {
	return r.users.updateByID(ctx, id, bson.M{"$set": bson.M{"role": role}})
}

// Delete removes a user by document id
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return r.users.deleteByID(ctx, id)
}

// Count returns the number of users
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	return r.users.count(ctx, bson.M{})
}
