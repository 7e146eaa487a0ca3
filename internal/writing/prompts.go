package writing

// Prompt banks are fixed; selection needs no API call.

var elementaryPrompts = []Prompt{
	{KindPicture, "Imagine this picture: A child stands at a fork in a path in a magical forest. " +
		"One path leads up a steep hill covered in wildflowers. The other path goes through " +
		"a dark, mysterious tunnel made of twisted tree branches. A friendly squirrel sits " +
		"between the two paths, holding a small golden key.\n\n" +
		"Write a story about what happens next."},
	{KindPicture, "Imagine this picture: A boy and a girl discover a small wooden boat washed up on " +
		"the shore of a lake. Inside the boat, there is a treasure map drawn on old, " +
		"wrinkled paper. In the distance, you can see a small island with a tall tree.\n\n" +
		"Write a story about what happens next."},
	{KindPicture, "Imagine this picture: A girl opens her front door on a snowy morning and finds " +
		"a baby penguin standing on the doorstep. The penguin is wearing a tiny red scarf " +
		"and is holding an envelope in its beak.\n\n" +
		"Write a story about what happens next."},
	{KindPicture, "Imagine this picture: A group of friends are playing in a park when they notice " +
		"a rainbow that seems to touch down right behind the big oak tree. As they run toward " +
		"it, they see something glowing at the base of the tree.\n\n" +
		"Write a story about what happens next."},
	{KindPicture, "Imagine this picture: A child is sitting in class when they look out the window " +
		"and see a hot air balloon landing in the school playground. A person in a colorful " +
		"coat steps out and waves at the school.\n\n" +
		"Write a story about what happens next."},
	{KindPicture, "Imagine this picture: A dog and a cat are sitting together watching a sunset. " +
		"Between them is a picnic basket, and behind them is a cozy tent set up for camping. " +
		"Fireflies are starting to appear in the evening air.\n\n" +
		"Write a story about this scene."},
	{KindPicture, "Imagine this picture: A child wakes up to find that their bedroom has transformed " +
		"overnight. The floor has become soft green grass, the ceiling looks like a blue sky " +
		"with clouds, and there is a small stream running through the middle of the room.\n\n" +
		"Write a story about what happens next."},
	{KindPicture, "Imagine this picture: A girl is walking home from school when she notices a tiny " +
		"door at the base of a large tree. The door is only about six inches tall and has " +
		"a tiny doorknob and a welcome mat.\n\n" +
		"Write a story about what happens next."},
	{KindPicture, "Write about a day when everything went wrong at first but ended up turning " +
		"into the best day ever."},
	{KindPicture, "Write a story about a kid who discovers they can talk to animals, but only " +
		"for one day."},
}

var middlePrompts = []Prompt{
	{KindCreative, "If you could have dinner with any person from history, who would it be? " +
		"Describe the evening: where you would eat, what you would talk about, " +
		"and what you would hope to learn from them."},
	{KindCreative, "Write a story that begins with this sentence: 'The door had always been " +
		"there, but nobody had ever noticed it until Tuesday.'"},
	{KindPersonal, "Describe a challenge you have faced and how you overcame it. " +
		"What did you learn about yourself in the process?"},
	{KindPersonal, "What is a quality you admire in someone you know? Describe a time when " +
		"that person demonstrated this quality and how it affected you."},
	{KindCreative, "Imagine you wake up one morning to discover that you are the last person " +
		"on Earth. Write about your first day."},
	{KindPersonal, "Describe a place that is special to you. What makes it special? " +
		"Use details to help the reader see, hear, and feel what it is like to be there."},
	{KindCreative, "Write a story about a character who receives an unexpected gift that " +
		"changes their life in a surprising way."},
	{KindPersonal, "If you could change one thing about your school, what would it be and why? " +
		"How would this change make school better for everyone?"},
	{KindCreative, "Write a story that takes place entirely during a thunderstorm. " +
		"The storm should play an important role in the story."},
	{KindPersonal, "Think about a time when you had to make a difficult decision. " +
		"What were your choices? What did you decide, and how did it turn out?"},
	{KindCreative, "Write a story about two characters who start as rivals but end up " +
		"becoming friends."},
	{KindPersonal, "What is something you are passionate about? Why does it matter to you, " +
		"and how has it shaped who you are?"},
}
