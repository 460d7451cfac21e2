package repository

// MongoDB stage/keyword constants shared by the aggregation builders.
const (
	StageMatch       = "$match"
	StageLookup      = "$lookup"
	StageUnwind      = "$unwind"
	StageAddFields   = "$addFields"
	StageProject     = "$project"
	StageSort        = "$sort"
	StageSkip        = "$skip"
	StageLimit       = "$limit"
	StageGroup       = "$group"
	StageReplaceRoot = "$replaceRoot"

	KeyFrom         = "from"
	KeyLocalField   = "localField"
	KeyForeignField = "foreignField"
	KeyAs           = "as"
	KeyPipeline     = "pipeline"
	KeyLet          = "let"
)

// Collection names. The like target collections are resolved through
// model.LikeTarget; these cover the rest.
const (
	ColUsers         = "users"
	ColVideos        = "videos"
	ColComments      = "comments"
	ColLikes         = "likes"
	ColSubscriptions = "subscriptions"
	ColTweets        = "tweets"
)
