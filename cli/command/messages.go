package command

const partialArchiveNotice = "A partial archive may have been left in the destination directory."
const plainArchiveNotice = "The unencrypted archive is still in the destination directory."
